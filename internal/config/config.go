// Package config loads application configuration from an optional YAML file
// and CAPITAL_-prefixed environment variables, and owns global logger setup.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/verityai/capital-recommender/internal/matcher"
)

// Config holds the full application configuration.
type Config struct {
	Catalog CatalogConfig `yaml:"catalog" mapstructure:"catalog"`
	Matcher MatcherConfig `yaml:"matcher" mapstructure:"matcher"`
	Batch   BatchConfig   `yaml:"batch" mapstructure:"batch"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// CatalogConfig configures the funding-source catalog.
type CatalogConfig struct {
	// File is an external YAML catalog; empty uses the built-in UK set.
	File string `yaml:"file" mapstructure:"file"`
}

// MatcherConfig configures match scoring and selection.
type MatcherConfig struct {
	WeightCompatibility float64 `yaml:"weight_compatibility" mapstructure:"weight_compatibility"`
	WeightApproval      float64 `yaml:"weight_approval" mapstructure:"weight_approval"`
	WeightCommercial    float64 `yaml:"weight_commercial" mapstructure:"weight_commercial"`
	WeightStrategic     float64 `yaml:"weight_strategic" mapstructure:"weight_strategic"`
	MinScore            float64 `yaml:"min_score" mapstructure:"min_score"`
	MaxRecommendations  int     `yaml:"max_recommendations" mapstructure:"max_recommendations"`
	DiversityCap        int     `yaml:"diversity_cap" mapstructure:"diversity_cap"`
}

// MatcherSettings converts the raw values into the matcher's config struct.
// Validation happens at matcher construction.
func (m MatcherConfig) MatcherSettings() matcher.Config {
	return matcher.Config{
		Weights: matcher.Weights{
			Compatibility:       m.WeightCompatibility,
			ApprovalProbability: m.WeightApproval,
			CommercialValue:     m.WeightCommercial,
			StrategicFit:        m.WeightStrategic,
		},
		MinScore:           m.MinScore,
		MaxRecommendations: m.MaxRecommendations,
		DiversityCap:       m.DiversityCap,
	}
}

// BatchConfig configures batch processing.
type BatchConfig struct {
	Concurrency    int     `yaml:"concurrency" mapstructure:"concurrency"`
	RequestsPerSec float64 `yaml:"requests_per_sec" mapstructure:"requests_per_sec"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port           int     `yaml:"port" mapstructure:"port"`
	RequestsPerSec float64 `yaml:"requests_per_sec" mapstructure:"requests_per_sec"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CAPITAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.requests_per_sec", 25)
	v.SetDefault("batch.concurrency", 5)
	v.SetDefault("batch.requests_per_sec", 50)
	v.SetDefault("matcher.weight_compatibility", 0.40)
	v.SetDefault("matcher.weight_approval", 0.35)
	v.SetDefault("matcher.weight_commercial", 0.15)
	v.SetDefault("matcher.weight_strategic", 0.10)
	v.SetDefault("matcher.min_score", 0.6)
	v.SetDefault("matcher.max_recommendations", 5)
	v.SetDefault("matcher.diversity_cap", 2)

	// Read config file (optional)
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
