// Package leads stores contact form submissions.
package leads

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/devcontracting/dcsite/internal/models"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no lead matches.
var ErrNotFound = errors.New("lead not found")

// strict strips every tag; leads are plain text end to end.
var strict = bluemonday.StrictPolicy()

// NewLead is the input to Create.
type NewLead struct {
	Name      string
	Email     string
	Phone     string
	Project   string
	RemoteIP  string
	UserAgent string
}

// Sanitize strips markup and surrounding whitespace from free text. The
// policy escapes what it keeps, so the result is unescaped back to plain
// text; renderers escape on output.
func Sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// Create stores a lead with a fresh reference
func Create(db *gorm.DB, in NewLead) (*models.ContactSubmission, error) {
	lead := &models.ContactSubmission{
		Reference: uuid.NewString(),
		Name:      Sanitize(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Project:   Sanitize(in.Project),
		RemoteIP:  in.RemoteIP,
		UserAgent: truncate(in.UserAgent, 512),
		Status:    models.StatusNew,
	}

	if err := db.Create(lead).Error; err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	return lead, nil
}

// GetByReference retrieves a lead by its visitor-facing reference
func GetByReference(db *gorm.DB, ref string) (*models.ContactSubmission, error) {
	var lead models.ContactSubmission
	result := db.Where("reference = ?", ref).First(&lead)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load lead: %w", result.Error)
	}
	return &lead, nil
}

// GetByID retrieves a lead by ID
func GetByID(db *gorm.DB, id uint) (*models.ContactSubmission, error) {
	var lead models.ContactSubmission
	result := db.First(&lead, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load lead: %w", result.Error)
	}
	return &lead, nil
}

// ListOptions filters List.
type ListOptions struct {
	Status string
	Limit  int
	Offset int
}

// List returns leads newest first
func List(db *gorm.DB, opts ListOptions) ([]models.ContactSubmission, error) {
	q := db.Model(&models.ContactSubmission{}).Order("created_at DESC").Order("id DESC")
	if opts.Status != "" {
		q = q.Where("status = ?", opts.Status)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}

	var out []models.ContactSubmission
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return out, nil
}

// Count returns the number of leads, optionally filtered by status
func Count(db *gorm.DB, status string) (int64, error) {
	q := db.Model(&models.ContactSubmission{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return n, nil
}

// MarkNotified records a successful notification
func MarkNotified(db *gorm.DB, id uint) error {
	return setStatus(db, id, models.StatusNotified, "")
}

// MarkNotifyFailed records a failed notification and its cause
func MarkNotifyFailed(db *gorm.DB, id uint, cause error) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return setStatus(db, id, models.StatusNotifyFailed, msg)
}

func setStatus(db *gorm.DB, id uint, status, notifyErr string) error {
	result := db.Model(&models.ContactSubmission{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       status,
		"notify_error": notifyErr,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update lead: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete soft-deletes a lead
func Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.ContactSubmission{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete lead: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
