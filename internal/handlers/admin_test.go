package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/devcontracting/dcsite/internal/auth"
	"github.com/devcontracting/dcsite/internal/backup"
	"github.com/devcontracting/dcsite/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginFormRenders(t *testing.T) {
	env := newTestEnv(t)

	w := env.get("/admin/login?next=/admin/leads?status=new")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="password"`)
	assert.Contains(t, w.Body.String(), `value="/admin/leads"`)
}

func TestLoginHandlerValidCredentials(t *testing.T) {
	env := newTestEnv(t)
	csrf := env.csrf(t)

	form := url.Values{
		"csrf_token": {csrf.Value},
		"email":      {"Owner@Example.com"},
		"password":   {testAdminPassword},
		"next":       {"https://evil.example.com/"},
	}
	w := env.postForm("/admin/login", form, csrf)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/leads", w.Header().Get("Location"))

	found := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == auth.CookieName {
			found = true
			assert.NotEmpty(t, cookie.Value, "Cookie value should not be empty")
			assert.True(t, cookie.HttpOnly, "Cookie should be HTTP-only")
		}
	}
	assert.True(t, found, "session cookie should be set")
}

func TestLoginHandlerInvalidPassword(t *testing.T) {
	env := newTestEnv(t)
	csrf := env.csrf(t)

	form := url.Values{
		"csrf_token": {csrf.Value},
		"email":      {testAdminEmail},
		"password":   {"wrong-password"},
	}
	w := env.postForm("/admin/login", form, csrf)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
	assert.Contains(t, w.Body.String(), `value="owner@example.com"`)
	for _, cookie := range w.Result().Cookies() {
		assert.NotEqual(t, auth.CookieName, cookie.Name)
	}
}

func TestAdminRoutesRequireSession(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/admin/leads", "/admin/leads.json"} {
		w := env.get(path)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Contains(t, w.Header().Get("Location"), "/admin/login?next=", path)
	}

	w := env.get("/admin/leads", &http.Cookie{Name: auth.CookieName, Value: "garbage"})
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestLeadsPage(t *testing.T) {
	env := newTestEnv(t)
	seedLead(t, env.db, "aaa", models.StatusNew)
	seedLead(t, env.db, "bbb", models.StatusNotified)
	cookies := env.login(t)

	w := env.get("/admin/leads", cookies...)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "lead-aaa")
	assert.Contains(t, w.Body.String(), "lead-bbb")
	assert.Contains(t, w.Body.String(), "2 total")

	w = env.get("/admin/leads?status=notified", cookies...)
	assert.NotContains(t, w.Body.String(), "lead-aaa")
	assert.Contains(t, w.Body.String(), "lead-bbb")
}

func TestLeadsPagination(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < LeadsPerPage+2; i++ {
		seedLead(t, env.db, fmt.Sprintf("ref%02d", i), models.StatusNew)
	}
	cookies := env.login(t)

	w := env.get("/admin/leads", cookies...)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `rel="next"`)
	assert.NotContains(t, w.Body.String(), `rel="prev"`)

	w = env.get("/admin/leads?page=2", cookies...)
	assert.Contains(t, w.Body.String(), "lead-ref00", "oldest lead is on the last page")
	assert.Contains(t, w.Body.String(), `rel="prev"`)
	assert.NotContains(t, w.Body.String(), `rel="next"`)
}

func TestExportLeads(t *testing.T) {
	env := newTestEnv(t)
	seedLead(t, env.db, "aaa", models.StatusNew)
	cookies := env.login(t)

	w := env.get("/admin/leads.json", cookies...)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "leads-20260601-120000.json")

	var records []backup.LeadRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "aaa", records[0].Reference)
}

func TestDeleteLead(t *testing.T) {
	env := newTestEnv(t)
	lead := seedLead(t, env.db, "aaa", models.StatusNew)
	cookies := env.login(t)
	csrf := cookies[1]

	form := url.Values{"csrf_token": {csrf.Value}}
	w := env.postForm(fmt.Sprintf("/admin/leads/%d/delete", lead.ID), form, cookies...)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	var count int64
	env.db.Model(&models.ContactSubmission{}).Count(&count)
	assert.Zero(t, count)

	w = env.postForm(fmt.Sprintf("/admin/leads/%d/delete", lead.ID), form, cookies...)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.postForm("/admin/leads/abc/delete", form, cookies...)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.login(t)

	form := url.Values{"csrf_token": {cookies[1].Value}}
	w := env.postForm("/admin/logout", form, cookies...)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, auth.LoginPath, w.Header().Get("Location"))

	cleared := false
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "session cookie should be expired")
}

func TestAdminCSS(t *testing.T) {
	env := newTestEnv(t)

	w := env.get("/admin/admin.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".badge--notify_failed")
}
