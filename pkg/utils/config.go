package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

// DefaultBackendURL is the movie review cloud function the app was first built against.
const DefaultBackendURL = "https://us-central1-ep43moviecrud.cloudfunctions.net/ep43moviescrudfunc"

type Config struct {
	App     AppConfig
	Backend BackendConfig
	View    ViewConfig
	Session SessionConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type BackendConfig struct {
	URL string
	// Timeout of zero means requests never time out.
	Timeout time.Duration
}

type ViewConfig struct {
	PageSize         int
	StrictValidation bool
}

type SessionConfig struct {
	TTL        time.Duration
	MaxEntries int
	CookieName string
}

// LoadConfig reads the dotenv file at path (when present) and the process environment.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	if path == "" {
		path = ".env"
	}
	v.SetConfigFile(path)
	v.SetConfigType("env")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Backend: BackendConfig{
			URL:     v.GetString("BACKEND_URL"),
			Timeout: v.GetDuration("BACKEND_TIMEOUT"),
		},
		View: ViewConfig{
			PageSize:         v.GetInt("PAGE_SIZE"),
			StrictValidation: v.GetBool("STRICT_VALIDATION"),
		},
		Session: SessionConfig{
			TTL:        v.GetDuration("SESSION_TTL"),
			MaxEntries: v.GetInt("SESSION_MAX"),
			CookieName: v.GetString("SESSION_COOKIE"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "movie-review")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("BACKEND_URL", DefaultBackendURL)
	v.SetDefault("BACKEND_TIMEOUT", "0s")
	v.SetDefault("PAGE_SIZE", 3)
	v.SetDefault("STRICT_VALIDATION", false)
	v.SetDefault("SESSION_TTL", "30m")
	v.SetDefault("SESSION_MAX", 10000)
	v.SetDefault("SESSION_COOKIE", "movie_review_session")
}

// Validate checks the values LoadConfig cannot default away.
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("BACKEND_URL is required")
	}
	if c.Backend.Timeout < 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must not be negative")
	}
	if c.View.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.View.PageSize)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Session.MaxEntries < 1 {
		return fmt.Errorf("SESSION_MAX must be positive, got %d", c.Session.MaxEntries)
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE is required")
	}
	return nil
}
