package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Auth holds the caller-identity boundary configuration.
	Auth AuthConfig `mapstructure:",squash"`

	// Snapshot holds the persistence boundary configuration.
	Snapshot SnapshotConfig `mapstructure:",squash"`

	// Events holds the audit event log bounds.
	Events EventsConfig `mapstructure:",squash"`
}

// AuthConfig holds the JWT verification secret and the admin list.
type AuthConfig struct {
	// TokenSecret is the shared HMAC secret bearer tokens are signed with.
	TokenSecret string `mapstructure:"AUTH_TOKEN_SECRET" required:"true"`
	// AdminIDs is a comma-separated list of admin identities.
	AdminIDs string `mapstructure:"ADMIN_IDS"`
}

// SnapshotConfig holds the Redis persistence settings.
type SnapshotConfig struct {
	// RedisURL is the snapshot store address. Empty disables snapshots.
	RedisURL string `mapstructure:"REDIS_URL"`
}

// EventsConfig holds the audit log retention bounds.
type EventsConfig struct {
	// LogCapacity is the maximum number of retained audit events.
	LogCapacity int `mapstructure:"EVENT_LOG_CAPACITY" default:"1000"`
	// RetentionHours is the age window, in hours, for the admin purge.
	RetentionHours int `mapstructure:"EVENT_RETENTION_HOURS" default:"24"`
}

// Admins splits the configured admin list, dropping empty entries.
func (a AuthConfig) Admins() []string {
	var admins []string
	for _, id := range strings.Split(a.AdminIDs, ",") {
		if trimmed := strings.TrimSpace(id); trimmed != "" {
			admins = append(admins, trimmed)
		}
	}
	return admins
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
