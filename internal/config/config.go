package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration.
type Config struct {
	ServerPort  string `mapstructure:"server_port"`
	SwaggerHost string `mapstructure:"swagger_host"`

	DBDriver    string `mapstructure:"db_driver"`
	DatabaseDSN string `mapstructure:"database_dsn"`
	ResetDB     bool   `mapstructure:"reset_db"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`

	RedisAddr string `mapstructure:"redis_addr"`
	RedisDB   int    `mapstructure:"redis_db"`
	RedisPass string `mapstructure:"redis_password"`

	JWTSecret string `mapstructure:"jwt_secret"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// DeviceAPIKey guards the edge-device endpoints when non-empty.
	DeviceAPIKey  string  `mapstructure:"device_api_key"`
	EdgeRateLimit float64 `mapstructure:"edge_rate_limit"`
	EdgeRateBurst int     `mapstructure:"edge_rate_burst"`

	WSAllowedOrigins []string `mapstructure:"ws_allowed_origins"`
	WSBuffer         int      `mapstructure:"ws_buffer"`

	LogListLimit int `mapstructure:"log_list_limit"`
}

// legacyEnv maps keys to the plain environment names used by older
// deployments, checked alongside the GATEPASS_ prefixed form.
var legacyEnv = map[string]string{
	"server_port":    "SERVER_PORT",
	"swagger_host":   "SWAGGER_HOST",
	"database_dsn":   "MYSQL_DSN",
	"reset_db":       "RESET_DB",
	"redis_addr":     "REDIS_ADDR",
	"redis_db":       "REDIS_DB",
	"redis_password": "REDIS_PASSWORD",
	"jwt_secret":     "JWT_SECRET",
}

// Load builds Config from .env, environment, an optional config.yaml and
// defaults, in that order of precedence (environment wins).
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn(".env file not loaded", "error", err)
	}

	v := viper.New()
	v.SetEnvPrefix("GATEPASS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, legacy := range legacyEnv {
		_ = v.BindEnv(key, "GATEPASS_"+strings.ToUpper(key), legacy)
	}

	v.SetDefault("server_port", "8080")
	v.SetDefault("db_driver", "mysql")
	v.SetDefault("database_dsn", "user:password@tcp(localhost:3306)/gatepass?charset=utf8mb4&parseTime=True&loc=UTC")
	v.SetDefault("reset_db", false)
	v.SetDefault("auto_migrate", true)
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("jwt_secret", "change-me")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("edge_rate_limit", 20.0)
	v.SetDefault("edge_rate_burst", 40)
	v.SetDefault("ws_buffer", 64)
	v.SetDefault("log_list_limit", 100)

	// Keys with no default are invisible to Unmarshal unless bound.
	for _, key := range []string{"device_api_key", "ws_allowed_origins"} {
		_ = v.BindEnv(key)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Debug("config.yaml not found, using environment only")
		} else {
			slog.Warn("config file error", "error", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("unable to decode config", "error", err)
	}
	cfg.WSAllowedOrigins = splitList(cfg.WSAllowedOrigins)
	return &cfg
}

// splitList flattens comma separated entries, as the environment delivers
// lists as a single string.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
