package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tinytelemetry/wonders/internal/logging"
	"github.com/tinytelemetry/wonders/internal/model"
)

// appConfig holds the resolved settings of one run.
type appConfig struct {
	Locale   string `mapstructure:"locale"`
	Skin     string `mapstructure:"skin"`
	Seed     uint64 `mapstructure:"seed"`
	Strict   bool   `mapstructure:"strict"`
	LogFile  string `mapstructure:"log-file"`
	LogLevel string `mapstructure:"log-level"`
	Open     string `mapstructure:"open"`

	// ConfigDir holds skins/. It is the directory of the config file.
	ConfigDir string `mapstructure:"-"`
}

// defaultConfigDir returns $HOME/.config/wonders.
func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", model.AppName), nil
}

// loadConfig resolves configuration from defaults, the config file, the
// environment and the flags that were set on the command line, in increasing
// order of precedence.
func loadConfig(configPath string, flags *pflag.FlagSet) (appConfig, error) {
	var cfg appConfig

	v := viper.New()
	v.SetEnvPrefix(model.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("locale", model.DefaultLocale)
	v.SetDefault("skin", model.DefaultSkin)
	v.SetDefault("seed", uint64(0))
	v.SetDefault("strict", false)
	v.SetDefault("log-file", "")
	v.SetDefault("log-level", model.DefaultLogLevel)
	v.SetDefault("open", "")

	if configPath == "" {
		dir, err := defaultConfigDir()
		if err != nil {
			return cfg, err
		}
		configPath = filepath.Join(dir, "config.yml")
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config %s: %w", configPath, err)
		}
	}

	if flags != nil {
		for _, name := range []string{"locale", "skin", "seed", "strict", "log-file", "log-level", "open"} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return cfg, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ConfigDir = filepath.Dir(configPath)

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return cfg, err
	}
	return cfg, nil
}
