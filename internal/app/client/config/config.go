package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "localhost:5555"
	defaultLogLevel      = "info"
	defaultEnv           = "local"
	defaultConfigDir     = ".worldexplorer"
	defaultSyncQuietMs   = 300
	defaultSyncTimeout   = 3
)

type Config struct {
	Env            string `mapstructure:"app_env"`
	ServerAddress  string `mapstructure:"server_address"`
	LogLevel       string `mapstructure:"log_level"`
	ConfigDir      string `mapstructure:"config_dir"`
	SessionPath    string `mapstructure:"session_path"`
	FavoritesPath  string `mapstructure:"favorites_path"`
	SyncQuietMs    int    `mapstructure:"sync_quiet_ms"`
	SyncTimeoutSec int    `mapstructure:"sync_timeout_seconds"`
	EnableTLS      bool   `mapstructure:"enable_tls"`
}

// MustLoad loads the client configuration from the environment, with an
// optional .env next to the binary or one directory up.
func MustLoad() *Config {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("could not load .env file: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("SYNC_QUIET_MS", defaultSyncQuietMs)
	viper.SetDefault("SYNC_TIMEOUT_SECONDS", defaultSyncTimeout)
	viper.SetDefault("ENABLE_TLS", false)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("could not create config directory: %v\n", err)
	}

	return &Config{
		Env:            viper.GetString("APP_ENV"),
		ServerAddress:  viper.GetString("SERVER_ADDRESS"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		ConfigDir:      configDir,
		SessionPath:    filepath.Join(configDir, "session.json"),
		FavoritesPath:  filepath.Join(configDir, "favorites.db"),
		SyncQuietMs:    viper.GetInt("SYNC_QUIET_MS"),
		SyncTimeoutSec: viper.GetInt("SYNC_TIMEOUT_SECONDS"),
		EnableTLS:      viper.GetBool("ENABLE_TLS"),
	}
}
