package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/daviddao/adaptive_contacts/internal/layout"
)

// Config holds application configuration.
type Config struct {
	Contacts ContactsConfig
	Layout   LayoutConfig
	Log      LogConfig
}

// ContactsConfig points at an optional contacts file.
type ContactsConfig struct {
	File string
}

// LayoutConfig controls how the orientation is determined.
type LayoutConfig struct {
	Orientation     string
	OrientationFile string `mapstructure:"orientation_file"`
	Aspect          float64
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string
	Level string
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"contacts":         "contacts.file",
	"orientation":      "layout.orientation",
	"orientation-file": "layout.orientation_file",
	"aspect":           "layout.aspect",
	"log-file":         "log.file",
	"log-level":        "log.level",
}

// Load reads configuration from defaults, the config file, ACV_ env vars
// and the given flags, in increasing order of precedence.
// path selects the config file; when empty ACV_CONFIG is used, then
// ~/.config/acv/config.yaml if it exists.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("contacts.file", "")
	v.SetDefault("layout.orientation", "auto")
	v.SetDefault("layout.orientation_file", "")
	v.SetDefault("layout.aspect", layout.DefaultAspect)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("yaml")
	if path == "" {
		path = os.Getenv("ACV_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "acv"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ACV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

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
		// A missing default config is fine; an explicit one must exist.
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := layout.ParseOrientation(c.Layout.Orientation); err != nil {
		return Config{}, fmt.Errorf("layout.orientation: %w", err)
	}
	if c.Layout.Aspect <= 0 {
		return Config{}, fmt.Errorf("layout.aspect must be positive, got %v", c.Layout.Aspect)
	}
	return c, nil
}

// Orientation returns the parsed forced orientation (Unknown for "auto").
func (c Config) Orientation() layout.Orientation {
	o, _ := layout.ParseOrientation(c.Layout.Orientation)
	return o
}
