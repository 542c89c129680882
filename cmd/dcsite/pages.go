package main

import (
	"fmt"

	"github.com/devcontracting/dcsite/internal/config"
	"github.com/devcontracting/dcsite/internal/pages"
	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Content page tools",
}

var pagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List content pages and their URLs",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		store, err := pages.NewStore(config.GetString("content.pages_dir"), nil)
		if err != nil {
			return err
		}

		for _, slug := range store.Slugs() {
			p, _ := store.Get(slug)
			fmt.Printf("%-24s %s\n", headingStyle.Render("/"+slug), p.Title)
		}
		if store.Dir() != "" {
			fmt.Println(mutedStyle.Render("overrides from " + store.Dir()))
		}
		return nil
	},
}

func init() {
	pagesCmd.AddCommand(pagesListCmd)
	rootCmd.AddCommand(pagesCmd)
}
