// SPDX-License-Identifier: MIT

// Package contact handles contact form submissions: validation, persistence
// and the notification email to the contractor.
package contact

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/devcontracting/dcsite/internal/email"
	"github.com/devcontracting/dcsite/internal/leads"
	"github.com/devcontracting/dcsite/internal/logger"
	"github.com/devcontracting/dcsite/internal/models"
	"github.com/devcontracting/dcsite/internal/widgets"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// DefaultNotifyTimeout bounds the notification email.
const DefaultNotifyTimeout = 15 * time.Second

var (
	// ErrUnavailable means the lead was saved but the notification could not be sent.
	ErrUnavailable = errors.New("notification unavailable")
	// ErrServer means the lead could not be saved.
	ErrServer = errors.New("server error")
)

// RetryMessage is shown in the Failed state.
const RetryMessage = "Something went wrong sending your message. Please try again or give us a call."

// Input is one submission as typed by the visitor.
type Input struct {
	Name      string `form:"name" json:"name" validate:"required,max=100"`
	Email     string `form:"email" json:"email" validate:"required,email,max=254"`
	Phone     string `form:"phone" json:"phone" validate:"omitempty,phone"`
	Project   string `form:"project" json:"project" validate:"max=2000"`
	RemoteIP  string `form:"-" json:"-"`
	UserAgent string `form:"-" json:"-"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (in Input) Trimmed() Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Project = strings.TrimSpace(in.Project)
	return in
}

// ValidationError carries one message per invalid field, keyed by form name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid contact submission: " + strings.Join(keys, ", ")
}

// Result is the outcome of a submission.
type Result struct {
	Reference string
	Lead      *models.ContactSubmission
	Machine   *widgets.FormMachine
}

// State is the form state after the submission.
func (r Result) State() widgets.FormState {
	if r.Machine == nil {
		return widgets.FormIdle
	}
	return r.Machine.State()
}

// Options configures a Service.
type Options struct {
	DB            *gorm.DB
	Sender        email.Sender
	NotifyTo      string
	NotifyTimeout time.Duration
	Logger        *logger.Logger
}

// Service validates, stores and announces submissions.
type Service struct {
	db            *gorm.DB
	sender        email.Sender
	notifyTo      string
	notifyTimeout time.Duration
	log           *logger.Logger
	validate      *validator.Validate
}

// NewService builds a Service. With a nil Sender leads are stored and left
// in the new status for the inbox.
func NewService(opts Options) *Service {
	if opts.NotifyTimeout <= 0 {
		opts.NotifyTimeout = DefaultNotifyTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &Service{
		db:            opts.DB,
		sender:        opts.Sender,
		notifyTo:      opts.NotifyTo,
		notifyTimeout: opts.NotifyTimeout,
		log:           opts.Logger,
		validate:      newValidator(),
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
	return v
}

// ValidPhone accepts 7 to 15 digits with common punctuation.
func ValidPhone(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case strings.ContainsRune(" ()-.+", r):
		default:
			return false
		}
	}
	return digits >= 7 && digits <= 15
}

// Validate checks an input and returns a *ValidationError describing every bad field.
func (s *Service) Validate(in Input) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate contact input: %w", err)
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		if fe.Tag() == "required" {
			return "Please tell us your name."
		}
		return "Name must be 100 characters or fewer."
	case "email":
		if fe.Tag() == "required" {
			return "Please enter your email address."
		}
		return "Please enter a valid email address."
	case "phone":
		return "Please enter a phone number with 7 to 15 digits."
	case "project":
		return "Project details must be 2000 characters or fewer."
	}
	return "This field is invalid."
}

// Submit runs one submission through the form machine.
//
// A *ValidationError leaves the machine Idle. A canceled context returns the
// context error before anything is stored. ErrServer leaves it Failed with
// RetryMessage. ErrUnavailable is returned alongside a Submitted result: the
// lead is stored and the visitor sees success. Name and project are stripped
// of markup before validation.
func (s *Service) Submit(ctx context.Context, in Input) (Result, error) {
	machine := widgets.NewFormMachine()
	res := Result{Machine: machine}

	in = in.Trimmed()
	in.Name = leads.Sanitize(in.Name)
	in.Project = leads.Sanitize(in.Project)
	if err := s.Validate(in); err != nil {
		return res, err
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	if err := machine.Submit(); err != nil {
		return res, err
	}

	lead, err := leads.Create(s.db.WithContext(ctx), leads.NewLead{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Project:   in.Project,
		RemoteIP:  in.RemoteIP,
		UserAgent: in.UserAgent,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, ctxErr
		}
		s.log.Error(err, "failed to store contact submission")
		_ = machine.Fail(RetryMessage)
		return res, fmt.Errorf("%w: %v", ErrServer, err)
	}

	res.Lead = lead
	res.Reference = lead.Reference
	_ = machine.Succeed()

	log := s.log.WithFields(map[string]any{"reference": lead.Reference})

	if s.sender == nil {
		log.Warn("lead stored; email notifications are not configured")
		return res, nil
	}

	if notifyErr := s.notify(ctx, lead); notifyErr != nil {
		log.Error(notifyErr, "lead stored but notification failed")
		if err := leads.MarkNotifyFailed(s.db, lead.ID, notifyErr); err != nil {
			log.Error(err, "failed to record notification failure")
		}
		lead.Status = models.StatusNotifyFailed
		return res, fmt.Errorf("%w: %v", ErrUnavailable, notifyErr)
	}

	if err := leads.MarkNotified(s.db, lead.ID); err != nil {
		log.Error(err, "failed to record notification")
	}
	lead.Status = models.StatusNotified
	log.Info("contact submission received")
	return res, nil
}

// notify outlives the request so a visitor closing the tab after the lead is
// stored still produces the email.
func (s *Service) notify(ctx context.Context, lead *models.ContactSubmission) error {
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()
	return email.SendContactNotification(nctx, s.sender, s.notifyTo, lead)
}
