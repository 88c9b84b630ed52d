// Package config loads mycv settings from defaults, an optional config file
// and MYCV_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jonathan/mycv/internal/types"
)

// EnvPrefix is prepended to every environment override, e.g. MYCV_SERVER_ADDR.
const EnvPrefix = "MYCV"

// Config aggregates the settings of the server and the static build.
type Config struct {
	AssetsDir string       `mapstructure:"assets_dir"`
	Template  string       `mapstructure:"template"` // empty uses the built-in template
	Server    ServerConfig `mapstructure:"server"`
	Build     BuildConfig  `mapstructure:"build"`
	Log       LogConfig    `mapstructure:"log"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// BuildConfig controls the static site build.
type BuildConfig struct {
	OutputDir       string `mapstructure:"output_dir"`
	DefaultLanguage string `mapstructure:"default_language"`
	BaseURL         string `mapstructure:"base_url"`
	Fresh           bool   `mapstructure:"fresh"`
	Text            bool   `mapstructure:"text"`
	PDF             bool   `mapstructure:"pdf"`
}

// LogConfig selects log level and format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration. path may be empty, in which case only defaults
// and environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("assets_dir", "assets")
	v.SetDefault("template", "")
	v.SetDefault("server.addr", "127.0.0.1:3000")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("build.output_dir", "docs")
	v.SetDefault("build.default_language", types.English.Code())
	v.SetDefault("build.base_url", "/")
	v.SetDefault("build.fresh", false)
	v.SetDefault("build.text", false)
	v.SetDefault("build.pdf", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.AssetsDir) == "" {
		errs = append(errs, errors.New("config error: 'assets_dir' must not be empty"))
	}
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("config error: template file not found: %s", c.Template))
		}
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("config error: 'server.addr' must not be empty"))
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("config error: server timeouts must be non-negative"))
	}
	if strings.TrimSpace(c.Build.OutputDir) == "" {
		errs = append(errs, errors.New("config error: 'build.output_dir' must not be empty"))
	}
	if _, err := types.LookupLanguage(c.Build.DefaultLanguage); err != nil {
		errs = append(errs, fmt.Errorf("config error: 'build.default_language': %w", err))
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("config error: 'log.format' must be text or json, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// DefaultLanguage returns the validated build language. Call Validate first.
func (c *Config) DefaultLanguage() types.Language {
	lang, err := types.LookupLanguage(c.Build.DefaultLanguage)
	if err != nil {
		return types.English
	}
	return lang
}
