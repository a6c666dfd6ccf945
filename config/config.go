package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultModelPriorities prefers Flash (fast/cheap), then Pro.
var DefaultModelPriorities = []string{
	"gemini-1.5-flash",
	"gemini-1.5-flash-latest",
	"gemini-1.5-flash-001",
	"gemini-1.5-pro",
	"gemini-pro",
	"gemini-1.0-pro",
}

const DefaultModel = "gemini-1.5-flash"

type AppConfig struct {
	Port             string
	GeminiBaseURL    string
	GeminiAPIVersion string
	DefaultModel     string
	ModelPriorities  []string
	RetryDelay       time.Duration
	MockDelay        time.Duration
	HTTPTimeout      time.Duration
	LogLevel         string
	LogFormat        string
	ConfigFile       string
}

// fileConfig is the optional YAML overlay named by CONFIG_FILE.
type fileConfig struct {
	Model struct {
		Default    string   `yaml:"default"`
		Priorities []string `yaml:"priorities"`
	} `yaml:"model"`
	Timing struct {
		RetryDelay string `yaml:"retry_delay"`
		MockDelay  string `yaml:"mock_delay"`
	} `yaml:"timing"`
}

func Load(logger *logrus.Logger) (AppConfig, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logger.Debugf("[cfg] no .env file loaded: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:             get("PORT", "8080"),
		GeminiBaseURL:    get("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiAPIVersion: get("GEMINI_API_VERSION", "v1beta"),
		DefaultModel:     get("DEFAULT_MODEL", DefaultModel),
		ModelPriorities:  splitList(get("MODEL_PRIORITIES", "")),
		LogLevel:         get("LOG_LEVEL", "info"),
		LogFormat:        get("LOG_FORMAT", "text"),
		ConfigFile:       get("CONFIG_FILE", ""),
	}
	if len(cfg.ModelPriorities) == 0 {
		cfg.ModelPriorities = append([]string(nil), DefaultModelPriorities...)
	}

	var err error
	if cfg.RetryDelay, err = duration("RETRY_DELAY", get("RETRY_DELAY", "4s")); err != nil {
		return cfg, err
	}
	if cfg.MockDelay, err = duration("MOCK_DELAY", get("MOCK_DELAY", "2s")); err != nil {
		return cfg, err
	}
	if cfg.HTTPTimeout, err = duration("HTTP_TIMEOUT", get("HTTP_TIMEOUT", "60s")); err != nil {
		return cfg, err
	}

	if cfg.ConfigFile != "" {
		if err := cfg.overlay(cfg.ConfigFile); err != nil {
			return cfg, err
		}
	}

	logger.WithFields(logrus.Fields{
		"port":       cfg.Port,
		"base_url":   cfg.GeminiBaseURL,
		"version":    cfg.GeminiAPIVersion,
		"model":      cfg.DefaultModel,
		"priorities": strings.Join(cfg.ModelPriorities, ","),
		"retry":      cfg.RetryDelay,
		"mock":       cfg.MockDelay,
	}).Info("[cfg] loaded")
	return cfg, nil
}

func (c *AppConfig) overlay(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if fc.Model.Default != "" {
		c.DefaultModel = fc.Model.Default
	}
	if len(fc.Model.Priorities) > 0 {
		c.ModelPriorities = fc.Model.Priorities
	}
	if fc.Timing.RetryDelay != "" {
		if c.RetryDelay, err = duration("timing.retry_delay", fc.Timing.RetryDelay); err != nil {
			return err
		}
	}
	if fc.Timing.MockDelay != "" {
		if c.MockDelay, err = duration("timing.mock_delay", fc.Timing.MockDelay); err != nil {
			return err
		}
	}
	return nil
}

// ConfigureLogger applies LOG_LEVEL and LOG_FORMAT to logger.
func (c AppConfig) ConfigureLogger(logger *logrus.Logger) {
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warnf("[cfg] unknown LOG_LEVEL %q, keeping %s", c.LogLevel, logger.GetLevel())
	}
	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func duration(name, v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: negative", name, v)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
