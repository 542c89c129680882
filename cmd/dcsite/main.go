// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/devcontracting/dcsite/internal/config"
	"github.com/devcontracting/dcsite/internal/db"
	"github.com/devcontracting/dcsite/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "dcsite",
	Short: "dcsite - Development Contracting website",
	Long: `dcsite serves the Development Contracting marketing site: the landing
page, content pages, partner logo proxy and the contact form, plus a small
inbox for the leads the form collects.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func main() {
	// SMTP credentials usually live in .env next to the binary
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("Error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $DCSITE_CONFIG or ~/.dcsite/config.yaml)")
}

// initConfig initializes the configuration system
func initConfig() error {
	configPath := configFile
	if configPath == "" {
		configPath = os.Getenv("DCSITE_CONFIG")
	}
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, ".dcsite", "config.yaml")
	}

	return config.InitConfig(configPath)
}

// initSystemDB initializes config and the lead database
func initSystemDB() error {
	if err := initConfig(); err != nil {
		return err
	}

	return db.InitDB(config.GetString("database.type"), config.GetString("database.path"))
}

// newLogger builds the process logger from log.* and installs it as default
func newLogger() (*logger.Logger, error) {
	log, err := logger.New(logger.Options{
		Level:         config.GetString("log.level"),
		HumanReadable: config.GetBool("log.human"),
		Writer:        os.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid log.level: %w", err)
	}
	logger.SetDefault(log)
	return log, nil
}
