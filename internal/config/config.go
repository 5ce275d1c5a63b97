package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Provider exposes configuration values to the rest of the application.
type Provider interface {
	GetAddr() string
	GetAppBaseURL() string
	GetLogFormat() string
	GetLogLevel() string
	GetContentPath() string
	GetContentWatch() bool
	GetBusinessName() string
	GetContactPhone() string
	GetContactAddress() string
}

// Config holds all configuration for the application.
type Config struct {
	Addr           string `validate:"required"`
	AppBaseURL     string `validate:"omitempty,url"`
	LogFormat      string `validate:"oneof=text json"`
	LogLevel       string `validate:"oneof=debug info warn error"`
	ContentPath    string
	ContentWatch   bool
	BusinessName   string
	ContactPhone   string `validate:"omitempty,e164"`
	ContactAddress string
}

// Defaults used when the environment leaves a value unset.
const (
	DefaultAddr      = ":8080"
	DefaultLogFormat = "text"
	DefaultLogLevel  = "info"
)

// New loads configuration from a .env file, if present, and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet at this point.
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Addr:           orDefault(getenv("APP_ADDR"), DefaultAddr),
		AppBaseURL:     getenv("APP_BASE_URL"),
		LogFormat:      orDefault(getenv("LOG_FORMAT"), DefaultLogFormat),
		LogLevel:       orDefault(getenv("LOG_LEVEL"), DefaultLogLevel),
		ContentPath:    getenv("CONTENT_PATH"),
		BusinessName:   getenv("BUSINESS_NAME"),
		ContactPhone:   getenv("CONTACT_PHONE"),
		ContactAddress: getenv("CONTACT_ADDRESS"),
	}

	if raw := getenv("CONTENT_WATCH"); raw != "" {
		watch, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("CONTENT_WATCH must be a boolean, got %q: %w", raw, err)
		}
		cfg.ContentWatch = watch
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (c *Config) GetAddr() string           { return c.Addr }
func (c *Config) GetAppBaseURL() string     { return c.AppBaseURL }
func (c *Config) GetLogFormat() string      { return c.LogFormat }
func (c *Config) GetLogLevel() string       { return c.LogLevel }
func (c *Config) GetContentPath() string    { return c.ContentPath }
func (c *Config) GetContentWatch() bool     { return c.ContentWatch }
func (c *Config) GetBusinessName() string   { return c.BusinessName }
func (c *Config) GetContactPhone() string   { return c.ContactPhone }
func (c *Config) GetContactAddress() string { return c.ContactAddress }
