package store

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	DefaultPath          = "~/.diary.db"
	DefaultAutosaveDelay = 3 * time.Second
)

// Config locates the store on disk.
type Config interface {
	BasePath() string
}

// FileConfig is read from the `.diary` config file, DIARY_* environment
// variables and an optional `.env` file.
type FileConfig struct {
	Path          string        `json:"path"`
	AutosaveDelay time.Duration `json:"autosaveDelay"`
	LogLevel      string        `json:"logLevel"`
	LogFormat     string        `json:"logFormat"`
}

// LoadConfig walks the usual locations for a `.diary.yaml` file.
func LoadConfig() (*FileConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	viper.SetDefault("path", DefaultPath)
	viper.SetDefault("autosave-delay", DefaultAutosaveDelay)
	viper.SetDefault("log-level", "info")
	viper.SetDefault("log-format", "text")
	viper.SetConfigName(".diary") // .yaml is implicit
	viper.SetEnvPrefix("DIARY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if override := os.Getenv("DIARY_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("expand store path: %w", err)
	}

	delay := viper.GetDuration("autosave-delay")
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}

	return &FileConfig{
		Path:          path,
		AutosaveDelay: delay,
		LogLevel:      viper.GetString("log-level"),
		LogFormat:     viper.GetString("log-format"),
	}, nil
}

func (f *FileConfig) BasePath() string {
	return f.Path
}

// PathConfig is a Config for a fixed directory.
type PathConfig string

func (p PathConfig) BasePath() string {
	return string(p)
}
