package main

import (
	"fmt"
	"time"

	"github.com/devcontracting/dcsite/internal/config"
	"github.com/devcontracting/dcsite/internal/tls"
	"github.com/spf13/cobra"
)

var tlsCmd = &cobra.Command{
	Use:   "tls",
	Short: "TLS certificate management",
	Long:  "Manage SSL/TLS certificates for the site's domains",
}

var tlsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show certificate status",
	Long:  "Display the status of all managed SSL/TLS certificates",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		if !config.GetBool("server.tls_enabled") {
			fmt.Println("TLS is disabled. Enable it with: dcsite config set server.tls_enabled true")
			return nil
		}

		tlsCfg, err := tls.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load TLS config: %w", err)
		}

		statuses := tlsCfg.CertificateStatus(time.Now())
		if len(statuses) == 0 {
			fmt.Println("No certificates found. Certificates are provisioned when the server starts.")
			fmt.Println("\nConfigured domains:")
			for _, domain := range tlsCfg.Domains() {
				fmt.Printf("  - %s (not yet provisioned)\n", domain)
			}
			return nil
		}

		fmt.Printf("%-30s %-20s %-15s %s\n", "Domain", "Issuer", "Expires", "Days Left")
		fmt.Println("-----------------------------------------------------------------------------------")
		for _, status := range statuses {
			days := fmt.Sprint(status.DaysUntilExpiry)
			switch {
			case status.DaysUntilExpiry < 7:
				days = errStyle.Render(days)
			case status.DaysUntilExpiry < 30:
				days = warnStyle.Render(days)
			}
			issuer := status.Issuer
			if status.Staging {
				issuer += " (staging)"
			}
			fmt.Printf("%-30s %-20s %-15s %s\n",
				status.Domain,
				issuer,
				status.NotAfter.Format("2006-01-02"),
				days,
			)
		}
		return nil
	},
}

func init() {
	tlsCmd.AddCommand(tlsStatusCmd)
	rootCmd.AddCommand(tlsCmd)
}
