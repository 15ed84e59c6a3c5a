package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"alb-analytics/internal/shared/validators"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ALBSTAT_OBJECT_STORAGE_BUCKET.
const EnvPrefix = "ALBSTAT"

var defaults = map[string]any{
	"server.port":                      8080,
	"server.read_header_timeout":       5,
	"server.read_timeout":              10,
	"server.write_timeout":             900,
	"server.idle_timeout":              60,
	"log.level":                        "info",
	"file_storage.root_dir":            "./data",
	"object_storage.provider":          "s3",
	"object_storage.bucket":            "prod-lbs-access-log",
	"object_storage.region":            "ap-northeast-1",
	"object_storage.endpoint_url":      "",
	"object_storage.force_path_style":  false,
	"object_storage.access_key_id":     "",
	"object_storage.secret_access_key": "",
	"object_storage.session_token":     "",
	"object_storage.credentials_file":  "",
	"alb.account_id":                   "710026814108",
	"alb.region":                       "ap-northeast-1",
	"alb.external_lb":                  "app.api-prod-elb",
	"alb.internal_lb":                  "app.api-prod-internal-elb",
	"download.concurrency":             8,
	"download.requests_per_second":     0,
	"progress.interval_ms":             1000,
}

// LoadDotEnv loads environment variables from the given .env files. Missing
// files are ignored; variables already set are kept.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %q: %w", path, err)
		}
	}
	return nil
}

// LoadConfig reads configuration from file, applies environment overrides and
// validates it. An empty configPath uses defaults and the environment only.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "server.port")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Server.Port" -> "server.port")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			fieldPath := strings.ToLower(strings.Join(parts[1:], "."))
			field = fieldPath
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
