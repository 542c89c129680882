package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/devcontracting/dcsite/internal/models"
	"gorm.io/gorm"
)

// exportBatch bounds how many rows are held in memory during an export.
const exportBatch = 200

// LeadRecord is one lead in an export
type LeadRecord struct {
	Reference   string    `json:"reference"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Project     string    `json:"project,omitempty"`
	Status      string    `json:"status"`
	NotifyError string    `json:"notify_error,omitempty"`
	RemoteIP    string    `json:"remote_ip,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func recordOf(l models.ContactSubmission) LeadRecord {
	return LeadRecord{
		Reference:   l.Reference,
		Name:        l.Name,
		Email:       l.Email,
		Phone:       l.Phone,
		Project:     l.Project,
		Status:      l.Status,
		NotifyError: l.NotifyError,
		RemoteIP:    l.RemoteIP,
		CreatedAt:   l.CreatedAt.UTC(),
	}
}

// ExportLeads streams every lead, oldest first, as a JSON array to w.
// An empty status exports all statuses. It returns the number written.
func ExportLeads(ctx context.Context, db *gorm.DB, w io.Writer, status string) (int, error) {
	q := db.WithContext(ctx).Model(&models.ContactSubmission{}).Order("id ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	if _, err := io.WriteString(w, "["); err != nil {
		return 0, err
	}

	n := 0
	var batch []models.ContactSubmission
	result := q.FindInBatches(&batch, exportBatch, func(tx *gorm.DB, _ int) error {
		for _, l := range batch {
			data, err := json.Marshal(recordOf(l))
			if err != nil {
				return fmt.Errorf("failed to encode lead %s: %w", l.Reference, err)
			}
			if n > 0 {
				if _, err := io.WriteString(w, ","); err != nil {
					return err
				}
			}
			if _, err := w.Write(data); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if result.Error != nil {
		return n, fmt.Errorf("failed to export leads: %w", result.Error)
	}

	if _, err := io.WriteString(w, "]\n"); err != nil {
		return n, err
	}
	return n, nil
}
