package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig
	Log LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Caption          string
	DateFormat       string `mapstructure:"date_format"`
	BeginPlaceholder string `mapstructure:"begin_placeholder"`
	EndPlaceholder   string `mapstructure:"end_placeholder"`
	Timezone         string
}

// LogConfig holds logging settings. An empty File discards log output.
type LogConfig struct {
	Level string
	File  string
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"log-file":  "log.file",
}

// Load reads configuration from defaults, the config file, env and flags.
// Env var overrides use prefix DATERANGE_. The file is $DATERANGE_CONFIG,
// the --config flag when set, or ~/.config/daterangefield/config.toml.
func Load(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.caption", "Date Range Field")
	v.SetDefault("ui.date_format", "2006-01-02")
	v.SetDefault("ui.begin_placeholder", "Begin date")
	v.SetDefault("ui.end_placeholder", "End date")
	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(os.Getenv("HOME"), ".local", "state", "daterangefield", "demo.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("DATERANGE_CONFIG")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			cfgPath = f.Value.String()
		}
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "daterangefield"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DATERANGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicitly named file must exist
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
