// Package config loads the application configuration from a YAML file and environment variables.
package config

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"

	"github.com/at-ishikawa/wordquiz/internal/scoring"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Quiz      QuizConfig      `mapstructure:"quiz"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
}

type ServerConfig struct {
	Port                   int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS                   CORSConfig `mapstructure:"cors"`
	ShutdownTimeoutSeconds int        `mapstructure:"shutdown_timeout_seconds" validate:"min=1"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host" validate:"required"`
	Port            int               `mapstructure:"port" validate:"min=1,max=65535"`
	Database        string            `mapstructure:"database" validate:"required"`
	Username        string            `mapstructure:"username" validate:"required"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds" validate:"min=0"`
}

// RedisConfig configures the word catalog cache. An empty address disables the cache.
type RedisConfig struct {
	Address         string `mapstructure:"address" validate:"omitempty,hostname_port"`
	Password        string `mapstructure:"password"`
	DB              int    `mapstructure:"db" validate:"min=0"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds" validate:"min=1"`
}

func (c RedisConfig) Enabled() bool {
	return c.Address != ""
}

func (c RedisConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

type OpenAIConfig struct {
	APIKey           string `mapstructure:"api_key"`
	Model            string `mapstructure:"model" validate:"required"`
	MaxRetryAttempts uint   `mapstructure:"max_retry_attempts" validate:"max=10"`
}

type AuthConfig struct {
	JWTSecret     string `mapstructure:"jwt_secret" validate:"omitempty,min=16"`
	Issuer        string `mapstructure:"issuer"`
	TokenTTLHours int    `mapstructure:"token_ttl_hours" validate:"min=1"`
}

type QuizConfig struct {
	Policy        PolicyConfig `mapstructure:"policy"`
	InitialWeight float64      `mapstructure:"initial_weight" validate:"gte=1"`
	InitBatchSize int          `mapstructure:"init_batch_size" validate:"min=1,max=1000"`
	ProgressDays  int          `mapstructure:"progress_days" validate:"min=1,max=366"`
	Timezone      string       `mapstructure:"timezone" validate:"required,timezone"`
}

// Location returns the time zone used for daily progress.
func (c QuizConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("time.LoadLocation(%s) > %w", c.Timezone, err)
	}
	return loc, nil
}

// PolicyConfig holds the constants of the weight update policy.
type PolicyConfig struct {
	Increment float64 `mapstructure:"increment" validate:"gt=0"`
	Decrement float64 `mapstructure:"decrement" validate:"gt=0"`
	Floor     float64 `mapstructure:"floor" validate:"gte=1"`
}

func (c PolicyConfig) Policy() scoring.Policy {
	return scoring.Policy{
		Increment: c.Increment,
		Decrement: c.Decrement,
		Floor:     c.Floor,
	}
}

type TemplatesConfig struct {
	StudySheetTemplate string `mapstructure:"study_sheet_template" validate:"omitempty,readable_file"`
}

type OutputsConfig struct {
	StudySheetDirectory string `mapstructure:"study_sheet_directory" validate:"required"`
}

type ConfigLoader struct {
	viper     *viper.Viper
	validator *configValidator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, err := newConfigValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordquiz")
	}

	return &ConfigLoader{
		viper:     v,
		validator: validate,
	}, nil
}

// Load reads the configuration from configFile, or from config.yml in the default paths when it is empty.
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "wordquiz")
	v.SetDefault("database.username", "user")
	v.SetDefault("redis.address", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.cache_ttl_seconds", 300)
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.max_retry_attempts", 3)
	v.SetDefault("auth.issuer", "wordquiz")
	v.SetDefault("auth.token_ttl_hours", 24)
	v.SetDefault("quiz.policy.increment", scoring.DefaultPolicy.Increment)
	v.SetDefault("quiz.policy.decrement", scoring.DefaultPolicy.Decrement)
	v.SetDefault("quiz.policy.floor", scoring.DefaultPolicy.Floor)
	v.SetDefault("quiz.initial_weight", scoring.DefaultWeight)
	v.SetDefault("quiz.init_batch_size", 100)
	v.SetDefault("quiz.progress_days", 7)
	v.SetDefault("quiz.timezone", "UTC")
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("templates.study_sheet_template", "")
	v.SetDefault("outputs.study_sheet_directory", "outputs")

	// Secrets are only read from environment variables
	for key, env := range map[string]string{
		"openai.api_key":    "OPENAI_API_KEY",
		"openai.model":      "OPENAI_MODEL",
		"database.password": "DB_PASSWORD",
		"auth.jwt_secret":   "WORDQUIZ_JWT_SECRET",
		"redis.password":    "REDIS_PASSWORD",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Validate(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Quiz.Policy.Policy().Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: quiz.policy: %w", err)
	}

	return &cfg, nil
}
