// Package config loads quake settings from .quake.yaml and QUAKE_* env vars.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Keys accepted in .quake.yaml. Nested keys map to env vars with dots
// replaced, so map.zoom is QUAKE_MAP_ZOOM.
const (
	// KeyFeed names the default USGS summary feed.
	KeyFeed = "feed"
	// KeySort is the default list order: newest, oldest, largest or smallest.
	KeySort = "sort"
	// KeyTimeout bounds the feed request.
	KeyTimeout = "timeout"
	// KeyMapZoom is the zoom the map flies to on selection.
	KeyMapZoom = "map.zoom"
	// KeyFlyDuration is how long a map flight lasts.
	KeyFlyDuration = "map.fly_duration"
	// KeyDebugLog is a file that receives the TUI's log output.
	KeyDebugLog = "debug_log"
)

const (
	configName      = ".quake"
	envPrefix       = "QUAKE"
	envConfigPath   = "QUAKE_CONFIG_PATH"
	defaultFeed     = "all_day"
	defaultSort     = "newest"
	defaultTimeout  = 30 * time.Second
	defaultZoom     = 6
	defaultDuration = 2 * time.Second
)

// Config is the resolved set of settings. Flags override these values.
type Config struct {
	Feed        string        `json:"feed" yaml:"feed"`
	Sort        string        `json:"sort" yaml:"sort"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
	FocusZoom   int           `json:"focusZoom" yaml:"focusZoom"`
	FlyDuration time.Duration `json:"flyDuration" yaml:"flyDuration"`
	DebugLog    string        `json:"debugLog" yaml:"debugLog"`
	// File is the config file that was read, if any.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Feed:        defaultFeed,
		Sort:        defaultSort,
		Timeout:     defaultTimeout,
		FocusZoom:   defaultZoom,
		FlyDuration: defaultDuration,
	}
}

// Load walks $QUAKE_CONFIG_PATH, ./ and then $HOME looking for a .quake
// file. A missing file is not an error.
func Load() (Config, error) {
	paths := []string{"./"}
	if home, err := homedir.Dir(); err == nil {
		paths = append(paths, home)
	}
	return load(viper.New(), paths...)
}

func load(v *viper.Viper, paths ...string) (Config, error) {
	def := Default()
	v.SetDefault(KeyFeed, def.Feed)
	v.SetDefault(KeySort, def.Sort)
	v.SetDefault(KeyTimeout, def.Timeout)
	v.SetDefault(KeyMapZoom, def.FocusZoom)
	v.SetDefault(KeyFlyDuration, def.FlyDuration)
	v.SetDefault(KeyDebugLog, "")

	v.SetConfigName(configName) // .yaml is implicit
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(envConfigPath); override != "" {
		v.AddConfigPath(override)
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return def, err
		}
	}

	return Config{
		Feed:        v.GetString(KeyFeed),
		Sort:        v.GetString(KeySort),
		Timeout:     v.GetDuration(KeyTimeout),
		FocusZoom:   v.GetInt(KeyMapZoom),
		FlyDuration: v.GetDuration(KeyFlyDuration),
		DebugLog:    v.GetString(KeyDebugLog),
		File:        v.ConfigFileUsed(),
	}, nil
}
