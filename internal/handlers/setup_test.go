package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/devcontracting/dcsite/internal/auth"
	"github.com/devcontracting/dcsite/internal/config"
	"github.com/devcontracting/dcsite/internal/contact"
	"github.com/devcontracting/dcsite/internal/models"
	"github.com/devcontracting/dcsite/internal/pages"
	"github.com/devcontracting/dcsite/internal/widgets"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testAdminEmail    = "owner@example.com"
	testAdminPassword = "correct horse"
)

type fakeSender struct {
	mu   sync.Mutex
	err  error
	sent []string
}

func (f *fakeSender) Send(_ context.Context, to, subject, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to+"|"+subject)
	return nil
}

type testEnv struct {
	deps   *Deps
	router *Router
	sender *fakeSender
	db     *gorm.DB
}

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.AutoMigrate(models.All()...), "Failed to migrate test database")
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return database
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	require.NoError(t, config.InitConfig(filepath.Join(t.TempDir(), "config.yaml")))
	hash, err := auth.HashPassword(testAdminPassword)
	require.NoError(t, err)
	config.Set("auth.jwt_secret", "handler-test-secret")
	config.Set("auth.admin_email", testAdminEmail)
	config.Set("auth.admin_password_hash", hash)

	database := setupHandlerTestDB(t)
	store, err := pages.NewStore("", nil)
	require.NoError(t, err)

	sender := &fakeSender{}
	deps := &Deps{
		DB:    database,
		Pages: store,
		Contact: contact.NewService(contact.Options{
			DB:       database,
			Sender:   sender,
			NotifyTo: "office@example.com",
		}),
		UI: UISettings{
			Navbar:       widgets.NavbarElegant,
			MarqueeSpeed: widgets.SpeedSlow,
			Palette:      "cedar",
		},
		Now: func() time.Time { return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC) },
	}

	router, err := NewRouter(deps, RouterOptions{RateLimit: 100, RateWindow: time.Minute})
	require.NoError(t, err)
	t.Cleanup(router.Close)

	return &testEnv{deps: deps, router: router, sender: sender, db: database}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return e.do(req)
}

// csrf fetches the home page and returns the issued token cookie.
func (e *testEnv) csrf(t *testing.T) *http.Cookie {
	t.Helper()
	w := e.get("/")
	for _, c := range w.Result().Cookies() {
		if c.Name == "dcsite_csrf" {
			return c
		}
	}
	t.Fatal("no CSRF cookie issued")
	return nil
}

func (e *testEnv) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return e.do(req)
}

// login signs in as the test admin and returns the session and CSRF cookies.
func (e *testEnv) login(t *testing.T) []*http.Cookie {
	t.Helper()
	csrf := e.csrf(t)
	form := url.Values{
		"csrf_token": {csrf.Value},
		"email":      {testAdminEmail},
		"password":   {testAdminPassword},
	}
	w := e.postForm("/admin/login", form, csrf)
	require.Equal(t, http.StatusFound, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName {
			return []*http.Cookie{c, csrf}
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func seedLead(t *testing.T, db *gorm.DB, ref, status string) models.ContactSubmission {
	t.Helper()
	lead := models.ContactSubmission{
		Reference: ref,
		Name:      "Pat " + ref,
		Email:     ref + "@example.com",
		Project:   "Kitchen",
		Status:    status,
	}
	require.NoError(t, db.Create(&lead).Error)
	return lead
}

var errSMTPDown = errors.New("smtp down")
