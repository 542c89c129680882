// Package backup snapshots the lead database and exports leads as JSON.
package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ErrUnsupported is returned for databases that cannot be snapshotted in-process.
var ErrUnsupported = errors.New("backups are only supported for sqlite")

const (
	filePrefix = "dcsite-"
	fileSuffix = ".db"
	// stampLayout sorts lexically in time order.
	stampLayout = "20060102-150405"

	DefaultRetention = 10
)

// BackupMetadata describes one snapshot on disk
type BackupMetadata struct {
	Timestamp time.Time
	Path      string
	Size      int64
}

// BackupManager handles all backup operations
type BackupManager struct {
	BackupPath string
	Retention  int

	db  *gorm.DB
	now func() time.Time
}

// NewBackupManager creates a new backup manager
func NewBackupManager(backupPath string, db *gorm.DB) *BackupManager {
	return &BackupManager{
		BackupPath: backupPath,
		Retention:  DefaultRetention,
		db:         db,
		now:        time.Now,
	}
}

// CreateBackup writes a consistent snapshot of the database and prunes old
// snapshots down to Retention.
func (m *BackupManager) CreateBackup(ctx context.Context) (*BackupMetadata, error) {
	if m.db == nil || m.db.Dialector.Name() != "sqlite" {
		return nil, ErrUnsupported
	}
	if err := os.MkdirAll(m.BackupPath, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	ts := m.now().UTC()
	path := filepath.Join(m.BackupPath, filePrefix+ts.Format(stampLayout)+fileSuffix)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("backup %s already exists", filepath.Base(path))
	}

	// VACUUM INTO reads inside one transaction, so concurrent writes are safe.
	if err := m.db.WithContext(ctx).Exec("VACUUM INTO ?", path).Error; err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to snapshot database: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat backup: %w", err)
	}

	if _, err := m.Prune(); err != nil {
		return nil, err
	}

	return &BackupMetadata{Timestamp: ts, Path: path, Size: info.Size()}, nil
}

// ListBackups returns snapshots newest first
func (m *BackupManager) ListBackups() ([]BackupMetadata, error) {
	entries, err := os.ReadDir(m.BackupPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var out []BackupMetadata
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		ts, err := time.Parse(stampLayout, strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix))
		if err != nil {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, BackupMetadata{Timestamp: ts, Path: filepath.Join(m.BackupPath, name), Size: info.Size()})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

// Prune deletes all but the newest Retention snapshots. A Retention of zero
// or less keeps everything.
func (m *BackupManager) Prune() (int, error) {
	if m.Retention <= 0 {
		return 0, nil
	}
	backups, err := m.ListBackups()
	if err != nil {
		return 0, err
	}
	removed := 0
	for i := m.Retention; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return removed, fmt.Errorf("failed to remove old backup: %w", err)
		}
		removed++
	}
	return removed, nil
}
