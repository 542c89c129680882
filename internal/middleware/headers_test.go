package middleware

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/devcontracting/dcsite/internal/logger"
	"github.com/gin-gonic/gin"
)

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	SecurityHeadersMiddleware()(c)

	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Accept-CH":              "Sec-CH-Prefers-Reduced-Motion",
	} {
		if got := w.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if csp := w.Header().Get("Content-Security-Policy"); !strings.Contains(csp, "frame-ancestors 'none'") {
		t.Errorf("unexpected CSP %q", csp)
	}
}

func TestHTTPSRedirect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		target, port, want string
	}{
		{"http://example.com/about?x=1", "443", "https://example.com/about?x=1"},
		{"http://example.com:8080/", "8443", "https://example.com:8443/"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", tc.target, nil)

		HTTPSRedirectMiddleware(tc.port)(c)

		if w.Code != http.StatusMovedPermanently {
			t.Errorf("%s: expected 301, got %d", tc.target, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != tc.want {
			t.Errorf("%s: Location = %q, want %q", tc.target, loc, tc.want)
		}
	}
}

func TestHTTPSRedirectSkipsACMEAndTLS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "http://example.com/.well-known/acme-challenge/abc", nil)
	HTTPSRedirectMiddleware("443")(c)
	if c.IsAborted() {
		t.Error("ACME challenge should not be redirected")
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "https://example.com/", nil)
	c.Request.TLS = &tls.ConnectionState{}
	HTTPSRedirectMiddleware("443")(c)
	if c.IsAborted() {
		t.Error("TLS request should not be redirected")
	}
}

func newCSRFRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CSRFMiddleware(false))
	r.GET("/form", func(c *gin.Context) { c.String(200, GetCSRFToken(c)) })
	r.POST("/contact", func(c *gin.Context) { c.Status(204) })
	return r
}

func TestCSRFIssuesToken(t *testing.T) {
	r := newCSRFRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/form", nil))

	if w.Body.Len() == 0 {
		t.Fatal("expected token in context")
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != w.Body.String() {
		t.Fatalf("expected matching cookie, got %+v", cookies)
	}
}

func TestCSRFRejectsMismatch(t *testing.T) {
	r := newCSRFRouter()

	form := url.Values{CSRFFormField: {"wrong"}}
	req := httptest.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "right"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestCSRFAcceptsFormAndHeader(t *testing.T) {
	r := newCSRFRouter()

	form := url.Values{CSRFFormField: {"tok"}}
	req := httptest.NewRequest("POST", "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "tok"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != 204 {
		t.Errorf("form token: expected 204, got %d", w.Code)
	}

	req = httptest.NewRequest("POST", "/contact", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(CSRFHeaderName, "tok")
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "tok"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != 204 {
		t.Errorf("header token: expected 204, got %d", w.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Writer: &buf, Level: "debug"})
	if err != nil {
		t.Fatalf("logger.New failed: %v", err)
	}

	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/missing", func(c *gin.Context) { c.Status(404) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/missing", nil))

	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("expected request id header")
	}

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("expected one JSON log line, got %q: %v", buf.String(), err)
	}
	if line["level"] != "warn" || line["path"] != "/missing" || line["status"] != float64(404) {
		t.Errorf("unexpected log line %v", line)
	}
}
