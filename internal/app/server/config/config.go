package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress      = "localhost:5555"
	defaultCatalogURL      = "https://restcountries.com/v3.1"
	defaultCatalogTimeout  = 10
	defaultMigrationsPath  = "migrations"
	defaultAllowedOrigins  = "*"
	defaultSessionTTLHours = 24
)

type Config struct {
	Env     string
	DB      db
	Server  server
	Catalog catalog
	Logger  logger
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress      string `env:"RUN_ADDRESS"`
	AllowedOrigins  []string
	SessionTTLHours int `env:"SESSION_TTL_HOURS"`
}

type catalog struct {
	BaseURL        string `env:"CATALOG_BASE_URL"`
	TimeoutSeconds int    `env:"CATALOG_TIMEOUT_SECONDS"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// MustLoad reads server configuration from the environment, with .env as
// an optional source for local runs.
func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("CATALOG_BASE_URL", defaultCatalogURL)
	viper.SetDefault("CATALOG_TIMEOUT_SECONDS", defaultCatalogTimeout)
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	viper.SetDefault("ALLOWED_ORIGINS", defaultAllowedOrigins)
	viper.SetDefault("SESSION_TTL_HOURS", defaultSessionTTLHours)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_ENV", EnvLocal)

	config := Config{
		Env: viper.GetString("APP_ENV"),
		DB: db{
			DatabaseURI: viper.GetString("DATABASE_URI"),
			Migrations:  viper.GetString("MIGRATIONS_PATH"),
		},
		Server: server{
			RunAddress:      viper.GetString("RUN_ADDRESS"),
			AllowedOrigins:  splitOrigins(viper.GetString("ALLOWED_ORIGINS")),
			SessionTTLHours: viper.GetInt("SESSION_TTL_HOURS"),
		},
		Catalog: catalog{
			BaseURL:        viper.GetString("CATALOG_BASE_URL"),
			TimeoutSeconds: viper.GetInt("CATALOG_TIMEOUT_SECONDS"),
		},
		Logger: logger{LogLevel: viper.GetString("LOG_LEVEL")},
	}

	return &config
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
