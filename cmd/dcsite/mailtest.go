// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/devcontracting/dcsite/internal/config"
	"github.com/devcontracting/dcsite/internal/email"
	"github.com/devcontracting/dcsite/internal/logger"
	"github.com/spf13/cobra"
)

var mailtestCmd = &cobra.Command{
	Use:   "mailtest [email]",
	Short: "Test email configuration and send a test message",
	Long: `Test the email service by sending a test message to the given address,
or to contact.notify_to when none is given. The command checks SMTP
configuration and prints diagnostics for common failures.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		testEmail := config.GetString("contact.notify_to")
		if len(args) == 1 {
			testEmail = args[0]
		}

		fmt.Println(headingStyle.Render("dcsite email diagnostic"))
		fmt.Println()

		fmt.Println("1. Checking environment variables...")
		smtp := os.Getenv("SMTP")
		smtpPort := os.Getenv("SMTP_PORT")
		emailFrom := os.Getenv("EMAIL")
		smtpSecret := os.Getenv("SMTP_SECRET")

		fmt.Printf("   SMTP:        %s\n", maskIfEmpty(smtp))
		fmt.Printf("   SMTP_PORT:   %s\n", maskIfEmpty(smtpPort))
		fmt.Printf("   EMAIL:       %s\n", maskIfEmpty(emailFrom))
		fmt.Printf("   SMTP_SECRET: %s\n", maskPassword(smtpSecret))
		fmt.Println()

		fmt.Println("2. Checking port configuration...")
		switch smtpPort {
		case "587":
			fmt.Println("   Using port 587 (STARTTLS)")
		case "465":
			fmt.Println("   Using port 465 (Implicit TLS)")
		default:
			fmt.Println(warnStyle.Render(fmt.Sprintf("   Unusual port %q (standard ports are 587 or 465)", smtpPort)))
		}
		fmt.Println()

		fmt.Println("3. Initializing email service...")
		svc, err := email.NewEmailService(logger.Nop())
		if err != nil {
			fmt.Println(errStyle.Render("   " + err.Error()))
			fmt.Println()
			fmt.Println("Required environment variables (a .env file next to the binary also works):")
			fmt.Println(`  SMTP="smtp.example.com"`)
			fmt.Println(`  SMTP_PORT="587"`)
			fmt.Println(`  EMAIL="noreply@yourdomain.com"`)
			fmt.Println(`  SMTP_SECRET="your-password"`)
			return err
		}
		fmt.Println(okStyle.Render("   Email service initialized"))
		fmt.Println()

		fmt.Printf("4. Sending test email to %s...\n", testEmail)
		body := fmt.Sprintf(`Hello,

This is a test message from the Development Contracting website.
Contact form notifications will be delivered the same way.

Sent at: %s
From: %s
SMTP Server: %s:%s
`, time.Now().Format("2006-01-02 15:04:05 MST"), svc.From(), smtp, smtpPort)

		ctx, cancel := context.WithTimeout(cmd.Context(), config.GetDuration("contact.notify_timeout")+10*time.Second)
		defer cancel()

		if err := svc.Send(ctx, testEmail, "Website email test", body); err != nil {
			fmt.Println(errStyle.Render("   Failed to send test email: " + err.Error()))
			fmt.Println()
			for _, hint := range smtpHints(err.Error(), smtp, smtpPort) {
				fmt.Println("  - " + hint)
			}
			return err
		}

		fmt.Println(okStyle.Render("   Test email sent"))
		fmt.Println()
		fmt.Printf("Check %s for the test message. If it is not there within a few minutes, check spam.\n", testEmail)
		return nil
	},
}

// smtpHints maps common SMTP failures to things worth checking
func smtpHints(errStr, host, port string) []string {
	switch {
	case strings.Contains(errStr, "first record does not look like a TLS handshake"):
		return []string{
			"The port and TLS method don't match",
			"Port 587 uses STARTTLS, port 465 uses implicit TLS",
		}
	case strings.Contains(errStr, "554") && strings.Contains(errStr, "DNS PTR"):
		return []string{
			"The server's IP needs a reverse DNS (PTR) record",
			"Also ensure an SPF record covers the server IP",
		}
	case strings.Contains(errStr, "535") || strings.Contains(errStr, "Authentication failed"):
		return []string{
			"Check EMAIL and SMTP_SECRET",
			"For Gmail, use an App Password rather than the account password",
		}
	case strings.Contains(errStr, "550") || strings.Contains(errStr, "Relaying denied"):
		return []string{
			"The SMTP server doesn't recognize EMAIL as an authorized sender",
			"Check the SPF record includes the server IP",
		}
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "no such host"):
		return []string{
			"Cannot connect to " + host,
			"Check the firewall allows outbound connections on port " + port,
		}
	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded"):
		return []string{
			"Connection to the SMTP server timed out",
			"Check the firewall allows outbound connections on port " + port,
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(mailtestCmd)
}

// maskIfEmpty returns s or "(not set)" if empty
func maskIfEmpty(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

// maskPassword returns a masked version of the password for display
func maskPassword(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + "****" + s[len(s)-2:]
}
