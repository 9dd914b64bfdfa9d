package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name
	AppName = "filesum"
	// EnvPrefix prefixes every environment override (FILESUM_DB_PATH, ...)
	EnvPrefix = "FILESUM"
	// ConfigFileName is the config file name without extension
	ConfigFileName = "config"
)

// Config holds the settings shared by every filesum binary
type Config struct {
	DBPath   string `mapstructure:"db_path"`
	LogLevel string `mapstructure:"log_level"`
	Record   bool   `mapstructure:"record"`
	Editor   string `mapstructure:"editor"`
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	ConfigFile string   // Explicit file; must exist when set
	ConfigDir  string   // Overrides the platform config directory
	Fs         afero.Fs // Defaults to the host filesystem
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		DBPath:   DefaultDBPath(),
		LogLevel: "warn",
		Record:   false,
		Editor:   "",
	}
}

// DefaultDBPath returns the snapshot database location under the XDG data directory
func DefaultDBPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, AppName, AppName+".db")
}

// Dir returns $XDG_CONFIG_HOME/filesum, defaulting to ~/.config/filesum
func Dir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, AppName), nil
}

// Load reads defaults, then the config file, then FILESUM_* environment
// variables. It returns the config and the file it was read from, if any.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()
	if opts.Fs != nil {
		v.SetFs(opts.Fs)
	}

	defaults := Default()
	v.SetDefault("db_path", defaults.DBPath)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("record", defaults.Record)
	v.SetDefault("editor", defaults.Editor)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
	} else {
		dir := opts.ConfigDir
		if dir == "" {
			var err error
			if dir, err = Dir(); err != nil {
				return nil, "", err
			}
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, "", fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, v.ConfigFileUsed(), nil
}
