//go:build e2e

package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrowser(t *testing.T) context.Context {
	t.Helper()
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, cancel := chromedp.NewContext(allocCtx)
	ctx, timeoutCancel := context.WithTimeout(ctx, 30*time.Second)
	t.Cleanup(func() {
		timeoutCancel()
		cancel()
		allocCancel()
	})
	return ctx
}

func fillContactForm(skip string) chromedp.Tasks {
	fields := []struct {
		selector string
		value    string
	}{
		{"#contact-name", "Jane Doe"},
		{"#contact-email", "jane@firm.com"},
		{"#contact-phone", "+911234567890"},
		{"#contact-message", "Need advice"},
	}

	var tasks chromedp.Tasks
	for _, f := range fields {
		if f.selector == skip {
			continue
		}
		tasks = append(tasks, chromedp.SendKeys(f.selector, f.value, chromedp.ByQuery))
	}
	if skip != "#contact-interest" {
		tasks = append(tasks, chromedp.SetValue("#contact-interest", "Other", chromedp.ByQuery))
	}
	if skip != "#contact-consent" {
		tasks = append(tasks, chromedp.Click("#contact-consent", chromedp.ByQuery))
	}
	return tasks
}

func TestBrowserContactForm(t *testing.T) {
	site := newTestSite(t, http.StatusOK, 100)
	app := httptest.NewServer(site.server.Echo)
	defer app.Close()

	t.Run("Empty required field blocks submission", func(t *testing.T) {
		for _, skip := range []string{"#contact-name", "#contact-email", "#contact-phone", "#contact-interest", "#contact-consent"} {
			ctx := newBrowser(t)
			var valid bool

			err := chromedp.Run(ctx,
				chromedp.Navigate(app.URL+"/"),
				chromedp.WaitVisible("#contact-form", chromedp.ByQuery),
				fillContactForm(skip),
				chromedp.Evaluate(`document.querySelector('#contact-form').checkValidity()`, &valid),
				chromedp.Click("#contact-form button[type='submit']", chromedp.ByQuery),
				chromedp.Sleep(500*time.Millisecond),
				chromedp.WaitVisible("#contact-form", chromedp.ByQuery),
			)
			require.NoError(t, err, skip)
			assert.False(t, valid, skip)
		}
		assert.Equal(t, int32(0), atomic.LoadInt32(site.hits))
	})

	t.Run("Complete form shows confirmation", func(t *testing.T) {
		ctx := newBrowser(t)
		var confirmation string

		err := chromedp.Run(ctx,
			chromedp.Navigate(app.URL+"/"),
			chromedp.WaitVisible("#contact-form", chromedp.ByQuery),
			fillContactForm(""),
			chromedp.Click("#contact-form button[type='submit']", chromedp.ByQuery),
			chromedp.WaitVisible("#contact-success", chromedp.ByQuery),
			chromedp.Text("#contact-success", &confirmation, chromedp.ByQuery),
		)
		require.NoError(t, err)
		assert.Contains(t, confirmation, "Thank you")
		assert.Equal(t, int32(1), atomic.LoadInt32(site.hits))
	})
}
