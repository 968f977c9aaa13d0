package handlers

import (
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"firm_site_go/config"
	"firm_site_go/services"
	"firm_site_go/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:   "test",
		AppURL:        "https://psl.example",
		SchedulingURL: "https://calendly.example/psl",
	}
}

func setupEcho(t *testing.T, method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	require.NoError(t, i18n.Load())

	e := echo.New()
	e.Validator = services.NewInquiryValidator()

	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", testConfig())

	return e, c, rec
}

func janeDoeForm() url.Values {
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

func postForm(t *testing.T, form url.Values, htmx bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	_, c, rec := setupEcho(t, "POST", "/contact", strings.NewReader(form.Encode()))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		c.Request().Header.Set("HX-Request", "true")
	}
	return c, rec
}
