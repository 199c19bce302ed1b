// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// OutputConfig is settings for written JSON records
type OutputConfig struct {
	// the string used to indent the JSON record
	Indent string `mapstructure:"indent"`

	// the extension given to record files when the output path is guessed
	Extension string `mapstructure:"extension"`
}

// Config is the root-level settings struct and is a mix of settings
// available in an optional settings file and those available from the
// command line
type Config struct {
	// Output settings for written records
	Output OutputConfig
}

// New returns a new Config struct populated by Viper settings (either
// from a local settings file) and/or command line arguments
func New() *Config {
	viper.SetDefault("output.indent", "  ")
	viper.SetDefault("output.extension", ".json")

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}
	return &c
}
