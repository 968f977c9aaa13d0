package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"firm_site_go/config"
	"firm_site_go/handlers"
	"firm_site_go/services"
	"firm_site_go/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var csrfInput = regexp.MustCompile(`name="_csrf" value="([^"]+)"`)

type testSite struct {
	server *Server
	hook   *test.Hook
	hits   *int32
	body   *atomic.Value
}

func newTestSite(t *testing.T, webhookStatus int, rateLimit int) *testSite {
	t.Helper()
	require.NoError(t, i18n.Load())

	var hits int32
	var body atomic.Value
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		b, _ := io.ReadAll(r.Body)
		body.Store(string(b))
		w.WriteHeader(webhookStatus)
	}))
	t.Cleanup(webhook.Close)

	cfg := &config.Config{
		ServerPort:        "0",
		Environment:       "test",
		AppURL:            "https://psl.example",
		ContactWebhookURL: webhook.URL,
		WebhookTimeout:    5 * time.Second,
		FormRateLimit:     rateLimit,
		SchedulingURL:     config.DefaultSchedulingURL,
	}
	logger, hook := test.NewNullLogger()

	srv := New(cfg, logger, services.NewWebhookSubmitter(cfg.ContactWebhookURL, cfg.WebhookTimeout))
	t.Cleanup(func() { srv.limiter.Close() })

	return &testSite{server: srv, hook: hook, hits: &hits, body: &body}
}

func (s *testSite) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.server.Echo.ServeHTTP(rec, req)
	return rec
}

// landing fetches the page and returns the CSRF cookie and token
func (s *testSite) landing(t *testing.T) (*http.Cookie, string) {
	t.Helper()
	rec := s.do(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	match := csrfInput.FindStringSubmatch(rec.Body.String())
	require.Len(t, match, 2)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "_csrf" {
			return cookie, match[1]
		}
	}
	t.Fatal("csrf cookie not set")
	return nil, ""
}

func (s *testSite) post(t *testing.T, form url.Values, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	cookie, token := s.landing(t)
	form.Set("_csrf", token)

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.AddCookie(cookie)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return s.do(req)
}

func (s *testSite) errorEntries() int {
	count := 0
	for _, entry := range s.hook.AllEntries() {
		if entry.Level == logrus.ErrorLevel {
			count++
		}
	}
	return count
}

func janeDoe() url.Values {
	return url.Values{
		"name":     {"Jane Doe"},
		"email":    {"jane@firm.com"},
		"phone":    {"+911234567890"},
		"company":  {""},
		"interest": {"Other"},
		"message":  {"Need advice"},
		"consent":  {"on"},
	}
}

func TestLandingPage(t *testing.T) {
	site := newTestSite(t, http.StatusOK, 10)

	rec := site.do(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "form-action 'self'")
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))

	html := rec.Body.String()
	assert.Contains(t, html, `class="theme-dark"`)
	assert.Contains(t, html, `lang="en"`)
	assert.Contains(t, html, config.DefaultSchedulingURL)
}

func TestPreferences(t *testing.T) {
	site := newTestSite(t, http.StatusOK, 10)

	t.Run("Language from query persists in cookie", func(t *testing.T) {
		rec := site.do(httptest.NewRequest(http.MethodGet, "/?lang=es", nil))
		assert.Contains(t, rec.Body.String(), `lang="es"`)
		var lang string
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == "lang" {
				lang = cookie.Value
			}
		}
		assert.Equal(t, "es", lang)
	})

	t.Run("Language from Accept-Language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "es-MX,es;q=0.9")
		assert.Contains(t, site.do(req).Body.String(), `lang="es"`)
	})

	t.Run("Theme from cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "theme", Value: "light"})
		assert.Contains(t, site.do(req).Body.String(), `class="theme-light"`)
	})
}

func TestContactFlow(t *testing.T) {
	t.Run("Webhook 200 submits and redirects", func(t *testing.T) {
		site := newTestSite(t, http.StatusOK, 10)

		rec := site.post(t, janeDoe(), false)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		location := rec.Header().Get(echo.HeaderLocation)
		assert.Equal(t, handlers.ContactThanksPath, location)

		thanks := site.do(httptest.NewRequest(http.MethodGet, location, nil))
		assert.Equal(t, http.StatusOK, thanks.Code)
		assert.Contains(t, thanks.Body.String(), `id="contact-success"`)
		assert.NotContains(t, thanks.Body.String(), `id="contact-form"`)

		// Loading the confirmation again relays nothing
		site.do(httptest.NewRequest(http.MethodGet, location, nil))
		assert.Equal(t, int32(1), atomic.LoadInt32(site.hits))
		assert.Equal(t,
			`{"name":"Jane Doe","email":"jane@firm.com","phone":"+911234567890","company":"","interest":"Other","message":"Need advice"}`,
			site.body.Load())
		assert.Equal(t, 0, site.errorEntries())
	})

	t.Run("Webhook 500 stays idle with values", func(t *testing.T) {
		site := newTestSite(t, http.StatusInternalServerError, 10)

		rec := site.post(t, janeDoe(), false)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="contact-form"`)
		assert.Contains(t, rec.Body.String(), `value="Jane Doe"`)
		assert.Contains(t, rec.Body.String(), "Need advice</textarea>")
		assert.Equal(t, int32(1), atomic.LoadInt32(site.hits))
		assert.Equal(t, 1, site.errorEntries())
	})

	t.Run("htmx failure returns no content", func(t *testing.T) {
		site := newTestSite(t, http.StatusInternalServerError, 10)

		rec := site.post(t, janeDoe(), true)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, 1, site.errorEntries())
	})

	t.Run("htmx success returns fragment", func(t *testing.T) {
		site := newTestSite(t, http.StatusOK, 10)

		rec := site.post(t, janeDoe(), true)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="contact-success"`)
		assert.NotContains(t, rec.Body.String(), "<html")
	})

	t.Run("Browser-valid email reaches the webhook", func(t *testing.T) {
		site := newTestSite(t, http.StatusOK, 10)
		form := janeDoe()
		form.Set("email", "jane@firm")

		rec := site.post(t, form, true)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int32(1), atomic.LoadInt32(site.hits))
		assert.Contains(t, site.body.Load(), `"email":"jane@firm"`)
	})

	t.Run("Missing required field makes no webhook call", func(t *testing.T) {
		site := newTestSite(t, http.StatusOK, 10)
		form := janeDoe()
		form.Del("consent")

		rec := site.post(t, form, false)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, int32(0), atomic.LoadInt32(site.hits))
	})

	t.Run("Missing CSRF token is refused", func(t *testing.T) {
		site := newTestSite(t, http.StatusOK, 10)

		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(janeDoe().Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := site.do(req)

		assert.Contains(t, []int{http.StatusBadRequest, http.StatusForbidden}, rec.Code)
		assert.Equal(t, int32(0), atomic.LoadInt32(site.hits))
	})

	t.Run("Rate limit", func(t *testing.T) {
		site := newTestSite(t, http.StatusOK, 2)

		assert.Equal(t, http.StatusSeeOther, site.post(t, janeDoe(), false).Code)
		assert.Equal(t, http.StatusSeeOther, site.post(t, janeDoe(), false).Code)
		assert.Equal(t, http.StatusTooManyRequests, site.post(t, janeDoe(), false).Code)
		assert.Equal(t, int32(2), atomic.LoadInt32(site.hits))
	})
}

func TestAuxiliaryRoutes(t *testing.T) {
	site := newTestSite(t, http.StatusOK, 10)

	for _, path := range []string{"/health", "/robots.txt", "/sitemap.xml"} {
		t.Run(path, func(t *testing.T) {
			rec := site.do(httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestShutdownTimeout(t *testing.T) {
	assert.Equal(t, 35*time.Second, ShutdownTimeout(&config.Config{}))
	assert.Equal(t, 15*time.Second, ShutdownTimeout(&config.Config{WebhookTimeout: 10 * time.Second}))
}
