package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultSchedulingURL is the public booking page linked next to the contact form
	DefaultSchedulingURL = "https://calendly.com/aayushdeshpande532/new-meeting"
	// DefaultWebhookTimeout bounds a single relay to the automation webhook
	DefaultWebhookTimeout = 30 * time.Second
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	LogLevel    string
	// TrustProxy makes client IPs come from X-Forwarded-For (rate limiting behind a proxy)
	TrustProxy bool
	// Contact relay
	ContactWebhookURL string
	WebhookTimeout    time.Duration
	FormRateLimit     int
	// External links
	SchedulingURL string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	environment := getEnv("ENVIRONMENT", "development")
	webhookURL := getEnv("CONTACT_WEBHOOK_URL", "")

	// Fatal in production, warning otherwise
	if err := ValidateWebhookURL(webhookURL); err != nil {
		if environment == "production" {
			log.Fatalf("[CRITICAL] CONTACT_WEBHOOK_URL is invalid: %v", err)
		}
		log.Printf("[WARNING] CONTACT_WEBHOOK_URL is invalid (%v). Contact submissions will fail until it is set.", err)
	}

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		Environment:       environment,
		AppURL:            strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		TrustProxy:        getEnvBool("TRUST_PROXY", false),
		ContactWebhookURL: webhookURL,
		WebhookTimeout:    getEnvDuration("WEBHOOK_TIMEOUT", DefaultWebhookTimeout),
		FormRateLimit:     getEnvInt("FORM_RATE_LIMIT", 10),
		SchedulingURL:     getEnv("SCHEDULING_URL", DefaultSchedulingURL),
	}
}

// IsProduction reports whether the app runs with production hardening
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("[WARNING] Invalid value for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

// ValidateWebhookURL checks that the contact webhook is an absolute http(s) URL
func ValidateWebhookURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("not set")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
