package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"pipeline-features/core/logger"
	"pipeline-features/feature/features"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Extract holds configuration for feature extraction and output.
	Extract features.Config `mapstructure:"extract"`
}

// replacer maps nested keys onto environment names (log.level -> LOG_LEVEL).
var replacer = strings.NewReplacer(".", "_")

// LoadConfig loads configuration from environment variables and a .env file
// found in dir.
func LoadConfig(dir string) (*Config, error) {
	// Missing .env is fine, the environment alone is enough.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	bindValues(v, Config{}, "")

	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// bindValues walks the struct and registers every `mapstructure` key with
// its `default` tag, so AutomaticEnv can resolve nested keys.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
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
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		def := field.Tag.Get("default")

		// Lists are registered as []string so an unset key decodes to an
		// empty list; env values ("a,b") are split by viper's decode hook.
		if field.Type.Kind() == reflect.Slice && field.Type.Elem().Kind() == reflect.String {
			v.SetDefault(key, splitList(def))
			continue
		}

		v.SetDefault(key, def)
	}
}

// splitList splits a comma separated default, dropping blank entries.
func splitList(s string) []string {
	items := []string{}
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
