package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/devcontracting/dcsite/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupFileDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leads.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedLeads(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		lead := models.ContactSubmission{
			Reference: "ref-" + string(rune('a'+i)),
			Name:      "Pat",
			Email:     "pat@example.com",
			Status:    models.StatusNew,
		}
		if i%2 == 1 {
			lead.Status = models.StatusNotified
		}
		if err := db.Create(&lead).Error; err != nil {
			t.Fatalf("Failed to seed lead: %v", err)
		}
	}
}

func TestNewBackupManager(t *testing.T) {
	manager := NewBackupManager("/tmp/backups", nil)
	if manager == nil {
		t.Fatal("NewBackupManager returned nil")
	}
	if manager.BackupPath != "/tmp/backups" {
		t.Errorf("expected /tmp/backups, got %s", manager.BackupPath)
	}
	if manager.Retention != DefaultRetention {
		t.Errorf("expected retention %d, got %d", DefaultRetention, manager.Retention)
	}
}

func TestCreateBackupWritesSnapshot(t *testing.T) {
	db := setupFileDB(t)
	seedLeads(t, db, 3)

	dir := t.TempDir()
	manager := NewBackupManager(dir, db)
	manager.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) }

	meta, err := manager.CreateBackup(context.Background())
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if filepath.Base(meta.Path) != "dcsite-20260304-050607.db" {
		t.Errorf("unexpected backup name %s", filepath.Base(meta.Path))
	}
	if meta.Size == 0 {
		t.Error("backup should not be empty")
	}

	snap, err := gorm.Open(sqlite.Open(meta.Path), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open snapshot: %v", err)
	}
	var count int64
	snap.Model(&models.ContactSubmission{}).Count(&count)
	if count != 3 {
		t.Errorf("snapshot should hold 3 leads, got %d", count)
	}
	if sqlDB, err := snap.DB(); err == nil {
		sqlDB.Close()
	}
}

func TestCreateBackupPrunesToRetention(t *testing.T) {
	db := setupFileDB(t)
	dir := t.TempDir()
	manager := NewBackupManager(dir, db)
	manager.Retention = 2

	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return ts }
	for i := 0; i < 4; i++ {
		if _, err := manager.CreateBackup(context.Background()); err != nil {
			t.Fatalf("CreateBackup %d failed: %v", i, err)
		}
		ts = ts.Add(time.Hour)
	}

	backups, err := manager.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected 2 backups after pruning, got %d", len(backups))
	}
	if !backups[0].Timestamp.After(backups[1].Timestamp) {
		t.Error("backups should be listed newest first")
	}
	if backups[0].Timestamp.Hour() != 3 {
		t.Errorf("newest backup should be kept, got %v", backups[0].Timestamp)
	}
}

func TestListBackupsIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600)
	os.WriteFile(filepath.Join(dir, "dcsite-garbage.db"), []byte("x"), 0o600)
	os.WriteFile(filepath.Join(dir, "dcsite-20260101-000000.db"), []byte("x"), 0o600)

	backups, err := NewBackupManager(dir, nil).ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("expected 1 backup, got %d", len(backups))
	}
}

func TestListBackupsMissingDirectory(t *testing.T) {
	backups, err := NewBackupManager(filepath.Join(t.TempDir(), "nope"), nil).ListBackups()
	if err != nil || len(backups) != 0 {
		t.Errorf("missing directory should list nothing, got %v, %v", backups, err)
	}
}

func TestCreateBackupRequiresSQLite(t *testing.T) {
	_, err := NewBackupManager(t.TempDir(), nil).CreateBackup(context.Background())
	if err != ErrUnsupported {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestNewScheduler(t *testing.T) {
	manager := NewBackupManager("/tmp/backups", nil)
	scheduler := NewScheduler(manager, nil)
	if scheduler == nil {
		t.Fatal("NewScheduler returned nil")
	}
	if scheduler.Manager != manager {
		t.Fatal("scheduler manager not set correctly")
	}
}
