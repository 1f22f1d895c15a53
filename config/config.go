// Package config loads settings and initializes logging.
package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Source SourceConfig `yaml:"source" mapstructure:"source"`
	Render RenderConfig `yaml:"render" mapstructure:"render"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// SourceConfig configures where features come from.
type SourceConfig struct {
	URL          string `yaml:"url" mapstructure:"url"`
	CacheTTLSecs int    `yaml:"cache_ttl_secs" mapstructure:"cache_ttl_secs"`
	TimeoutSecs  int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

func (c SourceConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSecs) * time.Second
}

func (c SourceConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// RenderConfig holds the map inputs.
type RenderConfig struct {
	Mode           string `yaml:"mode" mapstructure:"mode"`
	YearA          string `yaml:"year_a" mapstructure:"year_a"`
	YearB          string `yaml:"year_b" mapstructure:"year_b"`
	ShowArea       bool   `yaml:"show_area" mapstructure:"show_area"`
	ShowProduction bool   `yaml:"show_production" mapstructure:"show_production"`
	MaxTries       int    `yaml:"max_tries" mapstructure:"max_tries"`
	Seed           int64  `yaml:"seed" mapstructure:"seed"`
	OutDir         string `yaml:"out_dir" mapstructure:"out_dir"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads dualmap.yaml from the working directory, if present, and
// DUALMAP_* environment variables on top of the defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("dualmap")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DUALMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("source.url", "data.geojson")
	v.SetDefault("source.cache_ttl_secs", 300)
	v.SetDefault("source.timeout_secs", 30)
	v.SetDefault("render.mode", "yield")
	v.SetDefault("render.year_a", "2020")
	v.SetDefault("render.year_b", "2021")
	v.SetDefault("render.show_area", true)
	v.SetDefault("render.show_production", true)
	v.SetDefault("render.max_tries", 10)
	v.SetDefault("render.seed", 0)
	v.SetDefault("render.out_dir", ".")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)
	return nil
}
