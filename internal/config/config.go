package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by VERITAS_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("VERITAS_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

// ServiceURL returns the base URL of the detection service.
// Defaults to the service's local development address.
func ServiceURL() string {
	u := os.Getenv("VERITAS_SERVICE_URL")
	if u == "" {
		return "http://localhost:5000"
	}
	return u
}

// DetectorProvider returns the configured detector backend.
// Defaults to "http" if not set.
// Valid values: http, mock
func DetectorProvider() string {
	p := os.Getenv("DETECTOR_PROVIDER")
	if p == "" {
		return "http"
	}
	return p
}

// RequestTimeout returns the per-request timeout for detection calls.
// Verification fans out to web sources server-side, so the default is
// generous. Defaults to 120s if not set.
func RequestTimeout() time.Duration {
	secs, err := strconv.Atoi(os.Getenv("REQUEST_TIMEOUT_SECONDS"))
	if err != nil || secs <= 0 {
		return 120 * time.Second
	}
	return time.Duration(secs) * time.Second
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func MigrationsPath() string {
	p := os.Getenv("MIGRATIONS_PATH")
	if p == "" {
		return "migrations"
	}
	return p
}

// GatewayAPIKey returns the static bearer token the gateway requires.
// Empty means authentication is disabled.
func GatewayAPIKey() string {
	return os.Getenv("GATEWAY_API_KEY")
}

// WebhookURL returns the Discord webhook for run notifications.
// Empty means webhook notifications are disabled.
func WebhookURL() string {
	return os.Getenv("DISCORD_WEBHOOK_URL")
}

// ReportDir returns the directory exported reports are written to.
// Defaults to "reports" if not set.
func ReportDir() string {
	d := os.Getenv("REPORT_DIR")
	if d == "" {
		return "reports"
	}
	return d
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}
