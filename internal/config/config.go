package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	JWT      JWTConfig
	S3       S3Config
	Log      LogConfig
	CORS     CORSConfig
	Analyzer AnalyzerConfig
	Email    EmailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for contract storage.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AnalyzerProviderConfig holds settings for a single LLM analyzer provider.
type AnalyzerProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	MaxRetries   int    `mapstructure:"max_retries"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// AnalyzerConfig holds LLM contract analyzer settings with fallback support.
type AnalyzerConfig struct {
	Primary   AnalyzerProviderConfig `mapstructure:"primary"`
	Secondary AnalyzerProviderConfig `mapstructure:"secondary"`
}

// SecondaryConfig returns the secondary analyzer config, or nil if not configured.
func (a *AnalyzerConfig) SecondaryConfig() *AnalyzerProviderConfig {
	if a.Secondary.Provider != "" {
		return &a.Secondary
	}
	return nil
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// Load reads configuration from environment variables with the CONTRACTIQ_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CONTRACTIQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "contractiq")
	v.SetDefault("db.password", "contractiq_secret")
	v.SetDefault("db.name", "contractiq_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "contractiq")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "contractiq-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 20)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Analyzer defaults
	v.SetDefault("analyzer.primary.provider", "openai")
	v.SetDefault("analyzer.primary.api_key", "")
	v.SetDefault("analyzer.primary.default_model", "gpt-4o")
	v.SetDefault("analyzer.primary.max_retries", 2)
	v.SetDefault("analyzer.primary.timeout_secs", 120)
	v.SetDefault("analyzer.secondary.provider", "")
	v.SetDefault("analyzer.secondary.api_key", "")
	v.SetDefault("analyzer.secondary.default_model", "")
	v.SetDefault("analyzer.secondary.max_retries", 2)
	v.SetDefault("analyzer.secondary.timeout_secs", 120)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@contractiq.app")
	v.SetDefault("email.from_name", "ContractIQ")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                      "CONTRACTIQ_SERVER_PORT",
		"server.read_timeout":              "CONTRACTIQ_SERVER_READ_TIMEOUT",
		"server.write_timeout":             "CONTRACTIQ_SERVER_WRITE_TIMEOUT",
		"server.environment":               "CONTRACTIQ_SERVER_ENVIRONMENT",
		"db.host":                          "CONTRACTIQ_DB_HOST",
		"db.port":                          "CONTRACTIQ_DB_PORT",
		"db.user":                          "CONTRACTIQ_DB_USER",
		"db.password":                      "CONTRACTIQ_DB_PASSWORD",
		"db.name":                          "CONTRACTIQ_DB_NAME",
		"db.sslmode":                       "CONTRACTIQ_DB_SSLMODE",
		"db.max_open":                      "CONTRACTIQ_DB_MAX_OPEN",
		"db.max_idle":                      "CONTRACTIQ_DB_MAX_IDLE",
		"jwt.secret":                       "CONTRACTIQ_JWT_SECRET",
		"jwt.access_expiry":                "CONTRACTIQ_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":               "CONTRACTIQ_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                       "CONTRACTIQ_JWT_ISSUER",
		"s3.region":                        "CONTRACTIQ_S3_REGION",
		"s3.bucket":                        "CONTRACTIQ_S3_BUCKET",
		"s3.endpoint":                      "CONTRACTIQ_S3_ENDPOINT",
		"s3.access_key":                    "CONTRACTIQ_S3_ACCESS_KEY",
		"s3.secret_key":                    "CONTRACTIQ_S3_SECRET_KEY",
		"s3.max_file_size_mb":              "CONTRACTIQ_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":                "CONTRACTIQ_S3_PRESIGN_EXPIRY",
		"log.level":                        "CONTRACTIQ_LOG_LEVEL",
		"log.format":                       "CONTRACTIQ_LOG_FORMAT",
		"cors.allowed_origins":             "CONTRACTIQ_CORS_ALLOWED_ORIGINS",
		"analyzer.primary.provider":        "CONTRACTIQ_ANALYZER_PRIMARY_PROVIDER",
		"analyzer.primary.api_key":         "CONTRACTIQ_ANALYZER_PRIMARY_API_KEY",
		"analyzer.primary.default_model":   "CONTRACTIQ_ANALYZER_PRIMARY_DEFAULT_MODEL",
		"analyzer.primary.max_retries":     "CONTRACTIQ_ANALYZER_PRIMARY_MAX_RETRIES",
		"analyzer.primary.timeout_secs":    "CONTRACTIQ_ANALYZER_PRIMARY_TIMEOUT_SECS",
		"analyzer.secondary.provider":      "CONTRACTIQ_ANALYZER_SECONDARY_PROVIDER",
		"analyzer.secondary.api_key":       "CONTRACTIQ_ANALYZER_SECONDARY_API_KEY",
		"analyzer.secondary.default_model": "CONTRACTIQ_ANALYZER_SECONDARY_DEFAULT_MODEL",
		"analyzer.secondary.max_retries":   "CONTRACTIQ_ANALYZER_SECONDARY_MAX_RETRIES",
		"analyzer.secondary.timeout_secs":  "CONTRACTIQ_ANALYZER_SECONDARY_TIMEOUT_SECS",
		"email.provider":                   "CONTRACTIQ_EMAIL_PROVIDER",
		"email.region":                     "CONTRACTIQ_EMAIL_REGION",
		"email.from_address":               "CONTRACTIQ_EMAIL_FROM_ADDRESS",
		"email.from_name":                  "CONTRACTIQ_EMAIL_FROM_NAME",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CONTRACTIQ_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CONTRACTIQ_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Analyzer = AnalyzerConfig{
		Primary: AnalyzerProviderConfig{
			Provider:     v.GetString("analyzer.primary.provider"),
			APIKey:       v.GetString("analyzer.primary.api_key"),
			DefaultModel: v.GetString("analyzer.primary.default_model"),
			MaxRetries:   v.GetInt("analyzer.primary.max_retries"),
			TimeoutSecs:  v.GetInt("analyzer.primary.timeout_secs"),
		},
		Secondary: AnalyzerProviderConfig{
			Provider:     v.GetString("analyzer.secondary.provider"),
			APIKey:       v.GetString("analyzer.secondary.api_key"),
			DefaultModel: v.GetString("analyzer.secondary.default_model"),
			MaxRetries:   v.GetInt("analyzer.secondary.max_retries"),
			TimeoutSecs:  v.GetInt("analyzer.secondary.timeout_secs"),
		},
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	return cfg, nil
}
