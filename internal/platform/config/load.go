package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// siteEnvAliases maps the variables the public site already exports for
// the hosted backend onto config keys, so one .env serves both. APP_
// variables still take precedence.
var siteEnvAliases = map[string]string{
	"NEXT_PUBLIC_SUPABASE_URL":      "client.base_url",
	"NEXT_PUBLIC_SUPABASE_ANON_KEY": "backend.api_key",
	"SUPABASE_JWT_SECRET":           "auth.jwt_secret",
	"SUPABASE_SERVICE_ROLE_KEY":     "backend.service_key",
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	dotEnv    string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// The default is "configs" under the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithDotEnv reads the dotenv file at path into the process environment
// before the env layers. Variables already set win and a missing file is
// not an error.
func WithDotEnv(path string) Option {
	return func(o *loadOptions) {
		o.dotEnv = path
	}
}

// Load builds the configuration for profile from these layers, later ones
// overriding earlier ones:
//
//	defaults
//	{configDir}/base.yaml
//	{configDir}/{profile}.yaml
//	site variables (NEXT_PUBLIC_SUPABASE_URL, ...)
//	APP_ variables
//
// APP_ names are matched against the known keys, so that
// APP_CLIENT_RETRY_MAX_ATTEMPTS sets client.retry.max_attempts and not
// client.retry.max.attempts.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	if o.dotEnv != "" {
		if err := godotenv.Load(o.dotEnv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading dotenv %s: %w", o.dotEnv, err)
		}
	}

	k := koanf.New(".")
	if err := setAll(k, defaults()); err != nil {
		return nil, fmt.Errorf("setting defaults: %w", err)
	}
	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}
	if err := setAll(k, siteEnv()); err != nil {
		return nil, fmt.Errorf("loading site variables: %w", err)
	}
	if err := k.Load(appEnv(k.Keys()), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func setAll(k *koanf.Koanf, values map[string]any) error {
	for key, value := range values {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func siteEnv() map[string]any {
	values := make(map[string]any, len(siteEnvAliases))
	for name, key := range siteEnvAliases {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			values[key] = v
		}
	}
	return values
}

// appEnv reads APP_ variables. Names of known keys map back to them; any
// other name falls back to treating every underscore as nesting.
func appEnv(knownKeys []string) *env.Env {
	known := make(map[string]string, len(knownKeys))
	for _, key := range knownKeys {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	})
}

// validateProfile keeps the profile a plain file name inside configDir.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile must be a plain name, got %q", profile)
	}
	return nil
}
