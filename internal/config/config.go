// Package config reads the configuration of the backend from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/finance-tracker/backend/internal/money"
	"github.com/finance-tracker/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP Server
	APIURL string // Base URL of the API, used for links in responses
	Port   string

	// Database
	DBPath string

	// Runtime
	GinMode   string
	LogFormat string // "human" or "json". Defaults to human in debug mode, else json.

	// Router
	CORSAllowOrigins []string
	EnablePprof      bool

	// Display of amounts
	Currency string
	Locale   string
}

// Load reads the configuration from the environment.
//
// Variables from the given .env files are loaded first. They never
// override variables that are already set. Files that do not exist
// are skipped.
func Load(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load %s: %w", file, err)
		}
	}

	cfg := &Config{
		APIURL: os.Getenv("API_URL"),
		Port:   getEnv("PORT", "8080"),
		DBPath: getEnv("DB_PATH", "data/finance.db"),

		GinMode:   getEnv("GIN_MODE", gin.ReleaseMode),
		LogFormat: os.Getenv("LOG_FORMAT"),

		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      getEnvBool("ENABLE_PPROF", false),

		Currency: getEnv("CURRENCY", money.DefaultCurrency),
		Locale:   getEnv("LOCALE", money.DefaultLocale),
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error listing all problems
func (c *Config) Validate() error {
	var errs []string

	if c.APIURL == "" {
		errs = append(errs, "API_URL must be set")
	} else if u, err := url.Parse(c.APIURL); err != nil {
		errs = append(errs, fmt.Sprintf("invalid API_URL '%s': %v", c.APIURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, fmt.Sprintf("invalid API_URL scheme '%s': must be 'http' or 'https'", u.Scheme))
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DBPath == "" {
		errs = append(errs, "DB_PATH cannot be empty")
	}

	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		errs = append(errs, fmt.Sprintf("invalid GIN_MODE '%s': must be one of [debug release test]", c.GinMode))
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		errs = append(errs, fmt.Sprintf("invalid LOG_FORMAT '%s': must be one of [human json]", c.LogFormat))
	}

	if _, err := money.New(c.Currency, c.Locale); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

// HumanLogs reports if logs should be written in a human readable format.
func (c *Config) HumanLogs() bool {
	return c.LogFormat == "human" || (c.LogFormat == "" && c.GinMode == gin.DebugMode)
}

// BaseURL returns the parsed API_URL.
func (c *Config) BaseURL() (*url.URL, error) {
	return url.Parse(c.APIURL)
}

// Address returns the address for the HTTP server to listen on.
func (c *Config) Address() string {
	return ":" + c.Port
}

// RouterOptions returns the options for router.Config and router.AttachRoutes.
func (c *Config) RouterOptions() router.Options {
	return router.Options{
		CORSAllowOrigins: c.CORSAllowOrigins,
		EnablePprof:      c.EnablePprof,
		Currency:         c.Currency,
		Locale:           c.Locale,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
