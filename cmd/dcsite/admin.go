// SPDX-License-Identifier: MIT
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/devcontracting/dcsite/internal/auth"
	"github.com/devcontracting/dcsite/internal/config"
	"github.com/spf13/cobra"
)

const defaultJWTSecret = "CHANGE_ME_IN_PRODUCTION_USE_ENV_VAR"

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage the lead inbox account",
}

var adminSetPasswordCmd = &cobra.Command{
	Use:   "set-password <email>",
	Short: "Set the inbox admin email and password",
	Long: `Set the single account allowed into /admin. The password is read from
stdin and stored as a bcrypt hash. A signing secret is generated the first
time so sessions survive restarts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		email := strings.ToLower(strings.TrimSpace(args[0]))
		if !strings.Contains(email, "@") {
			return fmt.Errorf("%q is not an email address", args[0])
		}

		fmt.Print("Enter password: ")
		reader := bufio.NewReader(os.Stdin)
		password, err := reader.ReadString('\n')
		if err != nil && password == "" {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimRight(password, "\r\n")
		if len(password) < 10 {
			return fmt.Errorf("password must be at least 10 characters")
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}

		if secret := config.GetString("auth.jwt_secret"); secret == "" || secret == defaultJWTSecret {
			generated, err := auth.GenerateSecret()
			if err != nil {
				return err
			}
			if err := config.Set("auth.jwt_secret", generated); err != nil {
				return err
			}
			fmt.Println(mutedStyle.Render("Generated a new session signing secret"))
		}

		if err := config.Set("auth.admin_email", email); err != nil {
			return err
		}
		if err := config.Set("auth.admin_password_hash", hash); err != nil {
			return err
		}

		fmt.Println(okStyle.Render("Admin account set:"), email)
		return nil
	},
}

func init() {
	adminCmd.AddCommand(adminSetPasswordCmd)
	rootCmd.AddCommand(adminCmd)
}
