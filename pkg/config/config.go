package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all client settings.
type Config struct {
	APIBaseURL   string `mapstructure:"api_base_url"`
	PageSize     int    `mapstructure:"page_size"`
	DatabasePath string `mapstructure:"database_path"`
	ExportDir    string `mapstructure:"export_dir"`
	LogPath      string `mapstructure:"log_path"`
	LogLevel     string `mapstructure:"log_level"`
}

// Load reads ~/.tastebook/config.yaml if present, with TASTEBOOK_*
// environment variables taking precedence over the file.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	stateDir := filepath.Join(home, ".tastebook")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(stateDir)
	v.AddConfigPath(".")
	v.SetEnvPrefix("tastebook")
	v.AutomaticEnv()

	v.SetDefault("api_base_url", "https://api.tastebook.app/api")
	v.SetDefault("page_size", 12)
	v.SetDefault("database_path", filepath.Join(stateDir, "tastebook.db"))
	v.SetDefault("export_dir", filepath.Join(home, "Downloads"))
	v.SetDefault("log_path", filepath.Join(stateDir, "tastebook.log"))
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		// No config file is fine; env vars and defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
