package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	KeyNamespace      = "gpx.namespace"
	KeySchemaLocation = "gpx.schema_location"
	KeyTimeTag        = "gpx.time_tag"
	KeyAtomicOutput   = "output.atomic"
	KeyColorOutput    = "output.color"
)

const configName = ".gpx-tools"

// Config holds application configuration
type Config struct {
	Namespace      string
	SchemaLocation string
	TimeTag        string
	AtomicOutput   bool
	ColorOutput    bool

	// File is the configuration file that was read, empty when none was found
	File string
}

// Load reads configuration from cfgFile, or from an optional .gpx-tools.yaml
// in the working or home directory when cfgFile is empty, then from a .env
// file and GPXTOOLS_ prefixed environment variables, and places it in a newly
// allocated Config struct.
func Load(cfgFile string) (*Config, error) {
	// a missing .env file is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault(KeyNamespace, "http://www.topografix.com/GPX/1/0")
	v.SetDefault(KeySchemaLocation, "http://www.topografix.com/GPX/1/0 http://www.topografix.com/GPX/1/0/gpx.xsd")
	v.SetDefault(KeyTimeTag, "time")
	v.SetDefault(KeyAtomicOutput, true)
	v.SetDefault(KeyColorOutput, true)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if dir, err := os.Getwd(); err == nil {
			v.AddConfigPath(dir)
		}
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(configName)
	}

	v.SetEnvPrefix("gpxtools")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Namespace:      v.GetString(KeyNamespace),
		SchemaLocation: v.GetString(KeySchemaLocation),
		TimeTag:        v.GetString(KeyTimeTag),
		AtomicOutput:   v.GetBool(KeyAtomicOutput),
		ColorOutput:    v.GetBool(KeyColorOutput),
		File:           v.ConfigFileUsed(),
	}

	if cfg.TimeTag == "" {
		return nil, errors.New("gpx.time_tag must not be empty")
	}

	return cfg, nil
}
