package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Giphy    GiphyConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Comments CommentsConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type GiphyConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	CacheTTL time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// CommentsConfig holds product switches for comment listing.
type CommentsConfig struct {
	IncludeOrphaned bool
}

// LoadConfig reads the optional env file at path, then lets process
// environment variables override every key.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("APP_NAME", "gifboard")
	v.SetDefault("PORT", "3001")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("JWT_EXPIRY", "1h")
	v.SetDefault("GIPHY_BASE_URL", "https://api.giphy.com")
	v.SetDefault("GIPHY_TIMEOUT", "5s")
	v.SetDefault("CORS_ORIGIN", "http://localhost:3000")
	v.SetDefault("SEARCH_CACHE_TTL", "60s")
	v.SetDefault("COMMENTS_INCLUDE_ORPHANED", false)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			Expiry: v.GetDuration("JWT_EXPIRY"),
		},
		Giphy: GiphyConfig{
			APIKey:  v.GetString("GIPHY_API_KEY"),
			BaseURL: strings.TrimSuffix(v.GetString("GIPHY_BASE_URL"), "/"),
			Timeout: v.GetDuration("GIPHY_TIMEOUT"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			CacheTTL: v.GetDuration("SEARCH_CACHE_TTL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ORIGIN")),
		},
		Comments: CommentsConfig{
			IncludeOrphaned: v.GetBool("COMMENTS_INCLUDE_ORPHANED"),
		},
	}

	return config, nil
}

// Validate reports the required keys that are missing.
func (c *Config) Validate() error {
	var missing []string
	if c.JWT.Secret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.Giphy.APIKey == "" {
		missing = append(missing, "GIPHY_API_KEY")
	}
	if c.Database.Host == "" {
		missing = append(missing, "DB_HOST")
	}
	if c.Database.Name == "" {
		missing = append(missing, "DB_NAME")
	}
	if c.JWT.Expiry <= 0 {
		missing = append(missing, "JWT_EXPIRY")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing or invalid config: %s", strings.Join(missing, ", "))
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
