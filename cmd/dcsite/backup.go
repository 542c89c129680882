package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/devcontracting/dcsite/internal/backup"
	"github.com/devcontracting/dcsite/internal/config"
	"github.com/devcontracting/dcsite/internal/db"
	"github.com/spf13/cobra"
)

var (
	backupYes          bool
	backupExportStatus string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage database backups",
	Long:  "Commands for managing database backups: create, list, restore, delete, status and export",
}

func backupManager() *backup.BackupManager {
	m := backup.NewBackupManager(config.GetString("backups.path"), db.GetDB())
	m.Retention = config.GetInt("backups.retention")
	return m
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Snapshot the database now",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initSystemDB(); err != nil {
			return err
		}

		meta, err := backupManager().CreateBackup(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s %s (%s)\n", okStyle.Render("Created"), meta.Path, formatBytes(meta.Size))
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available backups",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		backups, err := backup.NewBackupManager(config.GetString("backups.path"), nil).ListBackups()
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			fmt.Println("No backups found")
			return nil
		}

		fmt.Println(headingStyle.Render("Available backups:"))
		for i, b := range backups {
			fmt.Printf("%d. %s (%s, %s)\n", i+1, filepath.Base(b.Path),
				b.Timestamp.Local().Format("2006-01-02 15:04:05"), formatBytes(b.Size))
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <filename>",
	Short: "Replace the database with a backup",
	Long:  "Replace the sqlite database with a backup. Stop the server first.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		if config.GetString("database.type") != "sqlite" {
			return backup.ErrUnsupported
		}

		src := filepath.Join(config.GetString("backups.path"), filepath.Base(args[0]))
		if _, err := os.Stat(src); err != nil {
			return fmt.Errorf("backup not found: %w", err)
		}
		dst := config.GetString("database.path")

		fmt.Println(warnStyle.Render("WARNING: This will overwrite " + dst))
		if !backupYes && !confirm(fmt.Sprintf("Restore from '%s'?", filepath.Base(src))) {
			fmt.Println("Restore cancelled.")
			return nil
		}

		if err := copyFile(src, dst); err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}
		fmt.Printf("Successfully restored from %s\n", filepath.Base(src))
		return nil
	},
}

// copyFile writes src to a temp file beside dst and renames it into place
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".restore-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

var backupDeleteCmd = &cobra.Command{
	Use:   "delete <filename>",
	Short: "Delete a backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		filename := filepath.Base(args[0])
		backupFile := filepath.Join(config.GetString("backups.path"), filename)

		if !backupYes && !confirm(fmt.Sprintf("Are you sure you want to delete '%s'?", filename)) {
			fmt.Println("Deletion cancelled.")
			return nil
		}

		if err := os.Remove(backupFile); err != nil {
			return fmt.Errorf("failed to delete backup: %w", err)
		}

		fmt.Printf("Successfully deleted %s\n", filename)
		return nil
	},
}

var backupStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backup status and statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		backups, err := backup.NewBackupManager(config.GetString("backups.path"), nil).ListBackups()
		if err != nil {
			return err
		}

		var totalSize int64
		for _, b := range backups {
			totalSize += b.Size
		}

		fmt.Println(headingStyle.Render("Backup Status:"))
		fmt.Printf("  Directory: %s\n", config.GetString("backups.path"))
		fmt.Printf("  Automatic: %v (every %s, keep %d)\n", config.GetBool("backups.enable_auto_backup"),
			config.GetDuration("backups.interval"), config.GetInt("backups.retention"))
		fmt.Printf("  Total backups: %d\n", len(backups))
		fmt.Printf("  Total size: %s\n", formatBytes(totalSize))
		if len(backups) > 0 {
			fmt.Printf("  Newest backup: %s\n", backups[0].Timestamp.Local().Format("2006-01-02 15:04:05"))
			fmt.Printf("  Oldest backup: %s\n", backups[len(backups)-1].Timestamp.Local().Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var backupExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export leads as JSON",
	Long:  "Write every lead as a JSON array to file, or stdout when omitted",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initSystemDB(); err != nil {
			return err
		}

		var out io.Writer = os.Stdout
		if len(args) == 1 {
			f, err := os.OpenFile(args[0], os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		n, err := backup.ExportLeads(cmd.Context(), db.GetDB(), out, backupExportStatus)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			fmt.Printf("Exported %d leads to %s\n", n, args[0])
		}
		return nil
	},
}

// formatBytes converts bytes to human-readable format
func formatBytes(bytes int64) string {
	units := []string{"B", "KB", "MB", "GB"}
	size := float64(bytes)

	for _, unit := range units {
		if size < 1024.0 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024.0
	}

	return fmt.Sprintf("%.2f TB", size)
}

func init() {
	backupRestoreCmd.Flags().BoolVarP(&backupYes, "yes", "y", false, "skip the confirmation prompt")
	backupDeleteCmd.Flags().BoolVarP(&backupYes, "yes", "y", false, "skip the confirmation prompt")
	backupExportCmd.Flags().StringVar(&backupExportStatus, "status", "", "only export leads with this status")

	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	backupCmd.AddCommand(backupDeleteCmd)
	backupCmd.AddCommand(backupStatusCmd)
	backupCmd.AddCommand(backupExportCmd)
}
