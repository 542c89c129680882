package main

import (
	"context"
	"fmt"
	"time"

	"github.com/devcontracting/dcsite/internal/config"
	"github.com/devcontracting/dcsite/internal/content"
	"github.com/devcontracting/dcsite/internal/logos"
	"github.com/devcontracting/dcsite/internal/widgets"
	"github.com/spf13/cobra"
)

var logosCmd = &cobra.Command{
	Use:   "logos",
	Short: "Partner logo diagnostics",
}

var logosCheckCmd = &cobra.Command{
	Use:   "check [partner-or-domain...]",
	Short: "Fetch partner logos and report which fall back to text",
	Long: `Fetch partner logos and report which fall back to text. Arguments may be
partner names ("Kohler") or domains; with none, every partner is checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		domains := content.PartnerDomains()
		if len(args) > 0 {
			domains = make([]string, 0, len(args))
			for _, a := range args {
				if p, ok := content.FindPartner(a); ok {
					a = p.Domain
				}
				domains = append(domains, a)
			}
		}

		r := logos.NewResolver(logos.Options{BaseURL: config.GetString("logos.base_url")})

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()
		if err := r.Warm(ctx, domains); err != nil {
			return err
		}

		failed := 0
		for _, d := range domains {
			switch r.Status(d) {
			case widgets.ImageLoaded:
				fmt.Printf("%s %s\n", okStyle.Render("ok  "), d)
			default:
				failed++
				_, err := r.Get(ctx, d)
				fmt.Printf("%s %s %s\n", errStyle.Render("text"), d, mutedStyle.Render(fmt.Sprint(err)))
			}
		}
		fmt.Printf("\n%d of %d logos will render as text\n", failed, len(domains))
		return nil
	},
}

func init() {
	logosCmd.AddCommand(logosCheckCmd)
	rootCmd.AddCommand(logosCmd)
}
