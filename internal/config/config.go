package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). Environment variables
// override file values; see applyEnv.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Limits  LimitsConfig  `yaml:"limits"`
	Presets PresetsConfig `yaml:"presets"`
	Results ResultsConfig `yaml:"results"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	Env            string   `yaml:"env"` // "production" switches gin to release mode
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

type LimitsConfig struct {
	// MaxForecastYears bounds the work a single request can ask for.
	MaxForecastYears int `yaml:"max_forecast_years"`
}

type PresetsConfig struct {
	Dir string `yaml:"dir"`
}

type ResultsConfig struct {
	// TTL is how long a computed valuation stays retrievable by ID.
	TTL time.Duration `yaml:"ttl"`
}

// Default returns the configuration used when no file or env is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			AllowedOrigins: []string{"*"},
		},
		Log:     LogConfig{Level: "info"},
		Limits:  LimitsConfig{MaxForecastYears: 100},
		Presets: PresetsConfig{Dir: "./examples/presets"},
		Results: ResultsConfig{TTL: time.Hour},
	}
}

// Load reads defaults, then the YAML file at path (if non-empty), then .env
// and the process environment, and validates the result.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// .env is optional.
	_ = godotenv.Load()
	if err := c.applyEnv(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked reads defaults and the YAML file but skips env and validation.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("server.port must be numeric: %q", c.Server.Port)
	}
	if c.Limits.MaxForecastYears < 1 {
		return errors.New("limits.max_forecast_years must be >= 1")
	}
	if c.Results.TTL <= 0 {
		return errors.New("results.ttl must be > 0")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// applyEnv overlays environment variables. A set but unparsable value is an
// error rather than a silent fallback to the file or default value.
func (c *Config) applyEnv() error {
	var errs []error

	c.Server.Port = getEnv("API_PORT", c.Server.Port)
	c.Server.Env = getEnv("API_ENV", c.Server.Env)
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		c.Server.AllowedOrigins = splitList(origins)
	}
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Presets.Dir = getEnv("PRESET_DIR", c.Presets.Dir)

	var err error
	if c.Log.Pretty, err = getEnvAsBool("LOG_PRETTY", c.Log.Pretty); err != nil {
		errs = append(errs, err)
	}
	if c.Limits.MaxForecastYears, err = getEnvAsInt("MAX_FORECAST_YEARS", c.Limits.MaxForecastYears); err != nil {
		errs = append(errs, err)
	}
	if c.Results.TTL, err = getEnvAsDuration("RESULT_TTL", c.Results.TTL); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvAsInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}

func getEnvAsBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}

func getEnvAsDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
