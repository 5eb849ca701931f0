package shotplan

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config collects the tunables an embedding application may override.
// Engines take these values as plain struct fields, so tests and embedders
// that do not want a config file can bypass loading entirely.
type Config struct {
	LogLevel   string `mapstructure:"logLevel"`
	Background string `mapstructure:"background"`

	Window struct {
		Width  int `mapstructure:"width"`
		Height int `mapstructure:"height"`
	} `mapstructure:"window"`

	History struct {
		Limit          int `mapstructure:"limit"`
		DebounceMillis int `mapstructure:"debounceMillis"`
	} `mapstructure:"history"`

	Trail struct {
		TapThreshold float64 `mapstructure:"tapThreshold"`
		SweepMillis  int     `mapstructure:"sweepMillis"`
	} `mapstructure:"trail"`

	Arrow struct {
		InsertMinDist float64 `mapstructure:"insertMinDist"`
	} `mapstructure:"arrow"`

	Gesture struct {
		LongPressMillis int     `mapstructure:"longPressMillis"`
		LongPressSlop   float64 `mapstructure:"longPressSlop"`
	} `mapstructure:"gesture"`
}

// LoadConfig reads shotplan.cfg.json from configDir, falling back to
// defaults for every missing key. A missing config file is not an error;
// a malformed one is.
func LoadConfig(configDir string) (Config, error) {
	v := viper.New()

	v.SetDefault("logLevel", "info")
	v.SetDefault("background", "")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 800)
	v.SetDefault("history.limit", DefaultHistoryLimit)
	v.SetDefault("history.debounceMillis", 300)
	v.SetDefault("trail.tapThreshold", DefaultTapThreshold)
	v.SetDefault("trail.sweepMillis", 1500)
	v.SetDefault("arrow.insertMinDist", DefaultInsertMinDist)
	v.SetDefault("gesture.longPressMillis", 500)
	v.SetDefault("gesture.longPressSlop", DefaultLongPressSlop)

	v.SetConfigName("shotplan.cfg.json")
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return cfg, nil
}
