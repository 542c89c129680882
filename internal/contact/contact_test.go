package contact

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/devcontracting/dcsite/internal/leads"
	"github.com/devcontracting/dcsite/internal/models"
	"github.com/devcontracting/dcsite/internal/widgets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeSender struct {
	mu    sync.Mutex
	calls int
	err   error
	block bool
}

func (f *fakeSender) Send(ctx context.Context, to, subject, body string) error {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func validInput() Input {
	return Input{
		Name:    "Pat Doe",
		Email:   "pat@example.com",
		Phone:   "(503) 555-0123",
		Project: "Rebuild the back deck",
	}
}

func TestSubmitHappyPath(t *testing.T) {
	db := setupTestDB(t)
	sender := &fakeSender{}
	svc := NewService(Options{DB: db, Sender: sender, NotifyTo: "owner@example.com"})

	res, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, widgets.FormSubmitted, res.State())
	assert.NotEmpty(t, res.Reference)
	assert.Equal(t, 1, sender.calls)

	stored, err := leads.GetByReference(db, res.Reference)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotified, stored.Status)
}

func TestSubmitValidationErrors(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(Options{DB: db, Sender: &fakeSender{}})

	in := Input{
		Name:    "   ",
		Email:   "not-an-email",
		Phone:   "12",
		Project: strings.Repeat("x", 2001),
	}
	res, err := svc.Submit(context.Background(), in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 4)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "phone")
	assert.Contains(t, verr.Fields, "project")
	assert.Equal(t, widgets.FormIdle, res.State())

	n, _ := leads.Count(db, "")
	assert.Zero(t, n)
}

func TestSubmitOptionalPhone(t *testing.T) {
	svc := NewService(Options{DB: setupTestDB(t), Sender: &fakeSender{}})

	in := validInput()
	in.Phone = ""
	_, err := svc.Submit(context.Background(), in)
	assert.NoError(t, err)
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("(503) 470-7007"))
	assert.True(t, ValidPhone("+1 503.470.7007"))
	assert.True(t, ValidPhone("5551234"))
	assert.False(t, ValidPhone("555123"))
	assert.False(t, ValidPhone("1234567890123456"))
	assert.False(t, ValidPhone("503-CALL-NOW"))
}

func TestSubmitNotificationFailureKeepsLead(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(Options{DB: db, Sender: &fakeSender{err: errors.New("connection refused")}})

	res, err := svc.Submit(context.Background(), validInput())
	require.ErrorIs(t, err, ErrUnavailable)

	assert.Equal(t, widgets.FormSubmitted, res.State())
	stored, err := leads.GetByReference(db, res.Reference)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotifyFailed, stored.Status)
	assert.Contains(t, stored.NotifyError, "connection refused")
}

func TestSubmitWithoutSender(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(Options{DB: db})

	res, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, widgets.FormSubmitted, res.State())

	stored, err := leads.GetByReference(db, res.Reference)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNew, stored.Status)
	assert.Empty(t, stored.NotifyError)
}

func TestSubmitMarkupOnlyNameIsRequired(t *testing.T) {
	db := setupTestDB(t)
	sender := &fakeSender{}
	svc := NewService(Options{DB: db, Sender: sender})

	in := validInput()
	in.Name = "<b></b>"
	res, err := svc.Submit(context.Background(), in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Equal(t, widgets.FormIdle, res.State())
	assert.Zero(t, sender.calls)

	n, _ := leads.Count(db, "")
	assert.Zero(t, n)
}

func TestSubmitKeepsPunctuationPlain(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(Options{DB: db, Sender: &fakeSender{}})

	in := validInput()
	in.Name = "Pat O'Brien"
	in.Project = `Kitchen & bath, 10' x 12" deck`
	res, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)

	stored, err := leads.GetByReference(db, res.Reference)
	require.NoError(t, err)
	assert.Equal(t, "Pat O'Brien", stored.Name)
	assert.Equal(t, `Kitchen & bath, 10' x 12" deck`, stored.Project)
}

func TestSubmitNotificationTimeout(t *testing.T) {
	svc := NewService(Options{
		DB:            setupTestDB(t),
		Sender:        &fakeSender{block: true},
		NotifyTimeout: 20 * time.Millisecond,
	})

	start := time.Now()
	_, err := svc.Submit(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSubmitServerError(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.ContactSubmission{}))
	svc := NewService(Options{DB: db, Sender: &fakeSender{}})

	res, err := svc.Submit(context.Background(), validInput())
	require.ErrorIs(t, err, ErrServer)
	assert.Equal(t, widgets.FormFailed, res.State())
	assert.Equal(t, RetryMessage, res.Machine.Failure())
}

func TestSubmitCanceledStoresNothing(t *testing.T) {
	db := setupTestDB(t)
	sender := &fakeSender{}
	svc := NewService(Options{DB: db, Sender: sender})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := svc.Submit(ctx, validInput())
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, widgets.FormIdle, res.State())
	assert.Zero(t, sender.calls)

	n, _ := leads.Count(db, "")
	assert.Zero(t, n)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"email": "x", "name": "y"}}
	assert.Equal(t, "invalid contact submission: email, name", err.Error())
}
