// internal/config/config.go
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // postgres | sqlite
	URL    string `mapstructure:"url"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type AppConfig struct {
	ReviewLimit    int    `mapstructure:"review_limit"`
	MaxReviewLimit int    `mapstructure:"max_review_limit"`
	DefaultLevel   string `mapstructure:"default_level"`
	HistoryLimit   int    `mapstructure:"history_limit"`
}

type JWTConfig struct {
	SecretKey string        `mapstructure:"secret_key"`
	TTL       time.Duration `mapstructure:"ttl"`
}

type AuthConfig struct {
	Enabled bool      `mapstructure:"enabled"`
	JWT     JWTConfig `mapstructure:"jwt"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type TutorConfig struct {
	Mode        string        `mapstructure:"mode"` // mock | openai
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"` // empty disables the content cache
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type ReminderConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

type MailerConfig struct {
	Type string `mapstructure:"type"` // log | smtp | ses
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // static_credentials | iam_role
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	From            string `mapstructure:"from"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	App      AppConfig      `mapstructure:"app"`
	Auth     AuthConfig     `mapstructure:"auth"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
	Tutor    TutorConfig    `mapstructure:"tutor"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	Mailer   MailerConfig   `mapstructure:"mailer"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	SES      SESConfig      `mapstructure:"ses"`
}

var Cfg Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.url", "")
	v.SetDefault("app.review_limit", DefaultAppReviewLimit)
	v.SetDefault("app.max_review_limit", DefaultMaxReviewLimit)
	v.SetDefault("app.default_level", DefaultLevel)
	v.SetDefault("app.history_limit", DefaultHistoryLimit)
	v.SetDefault("auth.enabled", DefaultAuthEnabled)
	v.SetDefault("auth.jwt.secret_key", "")
	v.SetDefault("auth.jwt.ttl", DefaultTokenTTL)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Accept", "Authorization", "Content-Type", "X-User-ID"})
	v.SetDefault("cors.exposed_headers", []string{})
	v.SetDefault("cors.allow_credentials", true)
	v.SetDefault("cors.max_age", 300)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("tutor.mode", "mock")
	v.SetDefault("tutor.api_key", "")
	v.SetDefault("tutor.base_url", DefaultOpenAIBaseURL)
	v.SetDefault("tutor.model", DefaultOpenAIModel)
	v.SetDefault("tutor.temperature", 0.7)
	v.SetDefault("tutor.timeout", 30*time.Second)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", time.Hour)
	v.SetDefault("reminder.enabled", false)
	v.SetDefault("reminder.interval", 24*time.Hour)
	v.SetDefault("mailer.type", "log")
	v.SetDefault("smtp.host", "localhost")
	v.SetDefault("smtp.port", 1025)
	v.SetDefault("smtp.from", "no-reply@ailinguo.local")
	v.SetDefault("ses.region", "us-east-1")
	v.SetDefault("ses.auth_type", "iam_role")
	v.SetDefault("ses.access_key_id", "")
	v.SetDefault("ses.secret_access_key", "")
	v.SetDefault("ses.from", "no-reply@ailinguo.local")
}

// Load reads config.yaml from path (or the working directory) and applies
// APP_-prefixed environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	// .env は任意。存在しなければ無視する
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Could not load .env file", slog.Any("error", err))
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Names used by the original deployment scripts.
	_ = v.BindEnv("database.url", "APP_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("auth.enabled", "APP_AUTH_ENABLED", "AUTH_ENABLED")
	_ = v.BindEnv("tutor.api_key", "APP_TUTOR_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("tutor.model", "APP_TUTOR_MODEL", "OPENAI_MODEL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		slog.Warn("Config file not found, using defaults and environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	return &cfg, nil
}

// LoadConfig loads the configuration into Cfg.
func LoadConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	Cfg = *cfg

	slog.Info("Config loaded",
		slog.String("port", Cfg.Server.Port),
		slog.String("db_driver", Cfg.Database.Driver),
		slog.Int("review_limit", Cfg.App.ReviewLimit),
		slog.Bool("auth_enabled", Cfg.Auth.Enabled),
		slog.String("tutor_mode", Cfg.Tutor.Mode),
	)
	return nil
}

func (c *Config) normalize() {
	if c.Server.Port == "" {
		c.Server.Port = DefaultServerPort
	}
	if c.App.ReviewLimit <= 0 {
		c.App.ReviewLimit = DefaultAppReviewLimit
	}
	if c.App.MaxReviewLimit < c.App.ReviewLimit {
		c.App.MaxReviewLimit = c.App.ReviewLimit
	}
	if c.App.HistoryLimit <= 0 {
		c.App.HistoryLimit = DefaultHistoryLimit
	}
	if c.Auth.JWT.TTL <= 0 {
		c.Auth.JWT.TTL = DefaultTokenTTL
	}
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	c.Tutor.Mode = strings.ToLower(strings.TrimSpace(c.Tutor.Mode))
	if c.Tutor.Mode == "openai" && c.Tutor.APIKey == "" {
		slog.Warn("Tutor mode is openai but no API key is set, falling back to mock")
		c.Tutor.Mode = "mock"
	}
	if c.Database.URL == "" {
		slog.Warn("Database URL is not set in config")
	}
}
