package backup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/devcontracting/dcsite/internal/logger"
)

// Scheduler handles automatic backup scheduling
type Scheduler struct {
	Manager        *BackupManager
	BackupInterval time.Duration

	log      *logger.Logger
	done     chan bool
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewScheduler creates a new backup scheduler
func NewScheduler(manager *BackupManager, log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	return &Scheduler{
		Manager:        manager,
		BackupInterval: 24 * time.Hour, // Default: daily
		log:            log,
		done:           make(chan bool, 1),
		stopChan:       make(chan struct{}),
	}
}

// Start begins the backup scheduler in a goroutine.
// The returned channel receives once the scheduler has stopped.
func (s *Scheduler) Start() chan bool {
	go func() {
		ticker := time.NewTicker(s.BackupInterval)
		defer ticker.Stop()

		// Run initial backup immediately
		if err := s.runBackup(); err != nil {
			s.log.Error(err, "initial backup failed")
		}

		for {
			select {
			case <-s.stopChan:
				s.done <- true
				return
			case <-ticker.C:
				if err := s.runBackup(); err != nil {
					s.log.Error(err, "scheduled backup failed")
				}
			}
		}
	}()

	return s.done
}

// Stop stops the backup scheduler. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
}

// runBackup performs a single backup, abandoning it if Stop is called
func (s *Scheduler) runBackup() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-s.stopChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	meta, err := s.Manager.CreateBackup(ctx)
	if err != nil {
		return fmt.Errorf("backup creation failed: %w", err)
	}
	s.log.WithFields(map[string]any{"path": meta.Path, "bytes": meta.Size}).Info("backup created")
	return nil
}

// SetInterval sets the backup interval for testing
func (s *Scheduler) SetInterval(interval time.Duration) {
	s.BackupInterval = interval
}
