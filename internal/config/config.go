// Package config loads lms settings from ~/.lms/config.toml, a .env file and
// LMS_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/lms-cli/internal/version"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "LMS"
	configDir  = ".lms"
	configName = "config"
	configType = "toml"
)

type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Secrets   SecretsConfig   `mapstructure:"secrets"`
	Endpoints EndpointsConfig `mapstructure:"endpoints"`
	Log       LogConfig       `mapstructure:"log"`

	v *viper.Viper
}

type APIConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	MaxRetries        int           `mapstructure:"max_retries"`
	BackoffBase       time.Duration `mapstructure:"backoff_base"`
	AttemptTimeout    time.Duration `mapstructure:"attempt_timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	UserAgent         string        `mapstructure:"user_agent"`
}

type AuthConfig struct {
	LoginPath string `mapstructure:"login_path"`
}

// SecretsConfig selects where the session is kept. Backend is one of auto,
// pass or file; auto tries pass first and falls back to Dir.
type SecretsConfig struct {
	Backend string `mapstructure:"backend"`
	Dir     string `mapstructure:"dir"`
}

type EndpointsConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type LoadOptions struct {
	// ConfigFile overrides the default ~/.lms/config.toml. An explicit file
	// must exist.
	ConfigFile string
	// EnvFile defaults to .env in the working directory. A missing file is
	// ignored.
	EnvFile string
	// HomeDir defaults to os.UserHomeDir.
	HomeDir string
}

func Load(opts LoadOptions) (*Config, error) {
	homeDir := opts.HomeDir
	if homeDir == "" {
		var err error
		homeDir, err = os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file %s: %w", envFile, err)
	}

	v := viper.New()
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(filepath.Join(homeDir, configDir))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v, homeDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Secrets.Dir = expandHome(cfg.Secrets.Dir, homeDir)
	cfg.Endpoints.Path = expandHome(cfg.Endpoints.Path, homeDir)
	v.Set("secrets.dir", cfg.Secrets.Dir)
	v.Set("endpoints.path", cfg.Endpoints.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	cfg.v = v
	return &cfg, nil
}

// Viper exposes the merged settings for adapters that read their own keys.
func (c *Config) Viper() *viper.Viper {
	if c.v == nil {
		c.v = viper.New()
		c.v.Set("endpoints.path", c.Endpoints.Path)
		c.v.Set("secrets.dir", c.Secrets.Dir)
	}

	return c.v
}

func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.API.BaseURL) == "" {
		errs = append(errs, errors.New("api.base_url is required"))
	}
	if c.API.MaxRetries < 1 {
		errs = append(errs, fmt.Errorf("api.max_retries must be at least 1, got %d", c.API.MaxRetries))
	}
	if c.API.BackoffBase < 0 {
		errs = append(errs, fmt.Errorf("api.backoff_base must not be negative, got %s", c.API.BackoffBase))
	}
	if c.API.AttemptTimeout < 0 {
		errs = append(errs, fmt.Errorf("api.attempt_timeout must not be negative, got %s", c.API.AttemptTimeout))
	}
	if c.API.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("api.requests_per_second must not be negative, got %g", c.API.RequestsPerSecond))
	}
	if strings.TrimSpace(c.Auth.LoginPath) == "" {
		errs = append(errs, errors.New("auth.login_path is required"))
	}
	switch c.Secrets.Backend {
	case "", "auto", "pass", "file":
	default:
		errs = append(errs, fmt.Errorf("secrets.backend must be auto, pass or file, got %q", c.Secrets.Backend))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

func setDefaults(v *viper.Viper, homeDir string) {
	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.max_retries", 3)
	v.SetDefault("api.backoff_base", time.Second)
	v.SetDefault("api.attempt_timeout", 30*time.Second)
	v.SetDefault("api.requests_per_second", 0.0)
	v.SetDefault("api.user_agent", "lms/"+version.Version)

	v.SetDefault("auth.login_path", "/auth/login")

	v.SetDefault("secrets.backend", "auto")
	v.SetDefault("secrets.dir", filepath.Join(homeDir, configDir, "secrets"))

	v.SetDefault("endpoints.path", filepath.Join(homeDir, configDir, "endpoints.toml"))

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

func expandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}
