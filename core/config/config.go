package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"orrery/core/logger"
	"orrery/core/server"
	"orrery/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Storage holds configuration for the export bucket.
	Storage storage.Config `mapstructure:"storage"`
}

// LoadConfig loads configuration from environment variables and an optional .env file
// located in path.
func LoadConfig(path string) (*Config, error) {
	// Missing .env is fine, production sets real environment variables
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()
	bindDefaults(v, reflect.TypeOf(Config{}), "")

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// bindDefaults walks the struct type and registers every mapstructure key with its
// `default` tag value. Keys must be registered for AutomaticEnv to pick them up
// during Unmarshal, so empty defaults are set too.
func bindDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindDefaults(v, field.Type, key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
