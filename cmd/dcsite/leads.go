package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/devcontracting/dcsite/internal/db"
	"github.com/devcontracting/dcsite/internal/leads"
	"github.com/devcontracting/dcsite/internal/models"
	"github.com/spf13/cobra"
)

var (
	leadsStatus string
	leadsLimit  int
	leadsYes    bool
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Manage contact form leads",
	Long:  "List, inspect and delete the leads collected by the contact form",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent leads",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initSystemDB(); err != nil {
			return err
		}

		list, err := leads.List(db.GetDB(), leads.ListOptions{Status: leadsStatus, Limit: leadsLimit})
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println(mutedStyle.Render("No leads found"))
			return nil
		}

		fmt.Println(leadsTable(list))
		return nil
	},
}

// leadsTable renders leads as a bordered table with colored statuses
func leadsTable(list []models.ContactSubmission) string {
	rows := make([][]string, 0, len(list))
	for _, l := range list {
		rows = append(rows, []string{
			fmt.Sprint(l.ID),
			l.CreatedAt.Local().Format("2006-01-02 15:04"),
			truncate(l.Name, 24),
			truncate(l.Email, 32),
			l.Status,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers("ID", "RECEIVED", "NAME", "EMAIL", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true)
			}
			if col == 4 && row >= 0 && row < len(rows) {
				return style.Inherit(statusStyle(rows[row][4]))
			}
			return style
		}).
		String()
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case models.StatusNotified:
		return okStyle
	case models.StatusNotifyFailed:
		return errStyle
	default:
		return warnStyle
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

var leadsShowCmd = &cobra.Command{
	Use:   "show <reference>",
	Short: "Show one lead in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initSystemDB(); err != nil {
			return err
		}

		l, err := leads.GetByReference(db.GetDB(), args[0])
		if err != nil {
			return err
		}

		label := headingStyle.Width(10)
		line := func(k, v string) {
			if v != "" {
				fmt.Println(label.Render(k), v)
			}
		}
		line("Reference", l.Reference)
		line("Received", l.CreatedAt.Local().Format(time.RFC1123))
		line("Name", l.Name)
		line("Email", l.Email)
		line("Phone", l.Phone)
		line("Status", statusStyle(l.Status).Render(l.Status))
		line("Error", l.NotifyError)
		line("IP", l.RemoteIP)
		line("Agent", l.UserAgent)
		if l.Project != "" {
			fmt.Println()
			fmt.Println(lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(72).Render(l.Project))
		}
		return nil
	},
}

var leadsDeleteCmd = &cobra.Command{
	Use:   "delete <reference>",
	Short: "Delete a lead",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initSystemDB(); err != nil {
			return err
		}

		l, err := leads.GetByReference(db.GetDB(), args[0])
		if err != nil {
			return err
		}

		if !leadsYes && !confirm(fmt.Sprintf("Delete the lead from %s <%s>?", l.Name, l.Email)) {
			fmt.Println("Deletion cancelled.")
			return nil
		}

		if err := leads.Delete(db.GetDB(), l.ID); err != nil {
			if errors.Is(err, leads.ErrNotFound) {
				return fmt.Errorf("lead %s was already deleted", args[0])
			}
			return err
		}

		fmt.Println(okStyle.Render("Deleted"), l.Reference)
		return nil
	},
}

// confirm asks a yes/no question on stdin
func confirm(question string) bool {
	fmt.Printf("%s (type 'yes' to confirm): ", question)
	var answer string
	fmt.Fscanln(os.Stdin, &answer)
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

func init() {
	leadsListCmd.Flags().StringVar(&leadsStatus, "status", "", "filter by status (new, notified, notify_failed)")
	leadsListCmd.Flags().IntVar(&leadsLimit, "limit", 50, "maximum leads to show")
	leadsDeleteCmd.Flags().BoolVarP(&leadsYes, "yes", "y", false, "skip the confirmation prompt")

	leadsCmd.AddCommand(leadsListCmd)
	leadsCmd.AddCommand(leadsShowCmd)
	leadsCmd.AddCommand(leadsDeleteCmd)
	rootCmd.AddCommand(leadsCmd)
}
