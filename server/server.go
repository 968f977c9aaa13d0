package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"firm_site_go/config"
	"firm_site_go/handlers"
	"firm_site_go/middleware"
	"firm_site_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// contactBodyLimit caps the contact form body
const contactBodyLimit = "64K"

// Server is the HTTP front of the site
type Server struct {
	Echo    *echo.Echo
	cfg     *config.Config
	logger  *logrus.Logger
	limiter *middleware.RateLimiter
}

// New builds the echo instance with middleware and routes. The submitter
// receives every inquiry that passes the form precondition.
func New(cfg *config.Config, logger *logrus.Logger, submitter services.InquirySubmitter) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = services.NewInquiryValidator()

	if cfg.TrustProxy {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	} else {
		e.IPExtractor = echo.ExtractIPDirect()
	}

	hsts := 0
	if cfg.IsProduction() {
		hsts = 31536000
	}

	// Middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         hsts,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	e.Use(echomiddleware.Gzip())

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	e.Static("/static", "static")

	e.GET("/health", handlers.HealthHandler)
	e.GET("/robots.txt", handlers.GetRobotsHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)

	limiter := middleware.NewContactRateLimiter(cfg.FormRateLimit)
	contact := handlers.NewContactHandler(submitter, logger)

	// Page routes
	site := e.Group("")
	site.Use(middleware.CSPNonce())
	site.Use(middleware.Locale(cfg))
	site.Use(middleware.Theme(cfg))
	site.Use(middleware.CSRF(cfg))
	{
		site.GET("/", handlers.LandingHandler)
		site.POST("/contact", contact.Submit, echomiddleware.BodyLimit(contactBodyLimit), limiter.Middleware())
		site.GET(handlers.ContactThanksPath, contact.Thanks)
	}

	return &Server{
		Echo:    e,
		cfg:     cfg,
		logger:  logger,
		limiter: limiter,
	}
}

// Start listens on the configured port until Shutdown is called
func (s *Server) Start() error {
	s.logger.WithFields(logrus.Fields{
		"port":        s.cfg.ServerPort,
		"environment": s.cfg.Environment,
	}).Info("Server starting")

	if err := s.Echo.Start(":" + s.cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, including contact relays, then stops
// background work
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.limiter.Close()
	return s.Echo.Shutdown(ctx)
}

// ShutdownTimeout is how long Shutdown waits for in-flight relays. It covers
// one full webhook timeout.
func ShutdownTimeout(cfg *config.Config) time.Duration {
	if cfg.WebhookTimeout <= 0 {
		return config.DefaultWebhookTimeout + 5*time.Second
	}
	return cfg.WebhookTimeout + 5*time.Second
}
