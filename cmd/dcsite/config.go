package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/devcontracting/dcsite/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage dcsite configuration",
	Long:  "View and modify dcsite configuration values",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		fmt.Println(config.GetString(args[0]))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		if isSecretKey(args[0]) {
			return fmt.Errorf("%s is managed by 'dcsite admin set-password'", args[0])
		}

		if err := config.Set(args[0], args[1]); err != nil {
			return fmt.Errorf("error setting config: %w", err)
		}

		fmt.Printf("Set %s = %s\n", args[0], args[1])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		flat := make(map[string]interface{})
		flatten("", config.GetAll(), flat)

		keys := make([]string, 0, len(flat))
		for k := range flat {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			value := flat[key]
			if isSecretKey(key) && fmt.Sprint(value) != "" {
				value = "(set)"
			}
			fmt.Printf("%s: %v\n", headingStyle.Render(key), value)
		}
		return nil
	},
}

func isSecretKey(key string) bool {
	key = strings.ToLower(key)
	return key == "auth.jwt_secret" || key == "auth.admin_password_hash"
}

// flatten turns viper's nested settings into dotted keys
func flatten(prefix string, in map[string]interface{}, out map[string]interface{}) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]interface{}); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
