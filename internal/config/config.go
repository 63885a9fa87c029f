package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/quannhg/graduation-invitation/pkg/utils"
)

// Config holds runtime configuration for the invitation service.
type Config struct {
	Addr   string `env:"ADDR,default=:8080"`
	AppEnv string `env:"APP_ENV,default=development"`

	LogLevel string `env:"LOG_LEVEL,default=info"`

	// AppsScriptURL is the deployed Google Apps Script web app backing the sheet.
	AppsScriptURL     string        `env:"APPS_SCRIPT_URL"`
	AppsScriptTimeout time.Duration `env:"APPS_SCRIPT_TIMEOUT,default=0s"`

	AttendanceMode         string        `env:"ATTENDANCE_MODE,default=radio"`
	PersonalizationEnabled bool          `env:"PERSONALIZATION_ENABLED,default=true"`
	PrefillNameEnabled     bool          `env:"PREFILL_NAME_ENABLED,default=true"`
	HostName               string        `env:"HOST_NAME,default=Quân"`
	PersonalizationTTL     time.Duration `env:"PERSONALIZATION_CACHE_TTL,default=10m"`

	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE,default=20"`

	SMTPHost       string `env:"SMTP_HOST"`
	SMTPPort       int    `env:"SMTP_PORT,default=587"`
	SMTPUser       string `env:"SMTP_EMAIL"`
	SMTPPassword   string `env:"SMTP_PASS"`
	OrganizerEmail string `env:"ORGANIZER_EMAIL"`

	OTLPEndpoint    string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelSampleRatio float64 `env:"OTEL_SAMPLE_RATIO,default=1"`
}

// Load returns a Config populated from environment variables.
func Load(ctx context.Context) (Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom is Load with an explicit lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return Config{}, err
	}
	cfg.AttendanceMode = strings.ToLower(strings.TrimSpace(cfg.AttendanceMode))
	switch cfg.AttendanceMode {
	case "radio", "single":
	default:
		return Config{}, fmt.Errorf("invalid ATTENDANCE_MODE: %q", cfg.AttendanceMode)
	}
	if cfg.RateLimitPerMinute < 0 {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %d", cfg.RateLimitPerMinute)
	}
	if cfg.OTelSampleRatio < 0 || cfg.OTelSampleRatio > 1 {
		return Config{}, fmt.Errorf("invalid OTEL_SAMPLE_RATIO: %v", cfg.OTelSampleRatio)
	}
	return cfg, nil
}

func (c Config) SMTP() utils.SMTPConfig {
	return utils.SMTPConfig{
		Host:     c.SMTPHost,
		Port:     c.SMTPPort,
		User:     c.SMTPUser,
		Password: c.SMTPPassword,
		From:     c.SMTPUser,
	}
}
