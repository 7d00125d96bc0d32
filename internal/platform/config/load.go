package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// listKeys are config keys whose env value is a comma or space separated list.
var listKeys = map[string]bool{
	"identity.scopes": true,
}

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir points Load at a directory other than "configs". An empty
// dir keeps the default.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		if dir != "" {
			o.configDir = dir
		}
	}
}

// Load builds the configuration for profile. Later layers win:
//
//  1. built-in defaults
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. APP_ environment variables
//
// Env names are matched against the keys already known from the first three
// layers, so underscores inside a field name survive:
//
//	APP_GRAPHQL_API_KEY                   -> graphql.api_key
//	APP_IDENTITY_REDIRECT_SIGN_IN         -> identity.redirect_sign_in
//	APP_GRAPHQL_CLIENT_RETRY_MAX_ATTEMPTS -> graphql.client.retry.max_attempts
//	APP_IDENTITY_SCOPES="openid,email"    -> identity.scopes
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	known := envKeys(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: known.transform,
	}), nil); err != nil {
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

func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// envKeyMap maps the env spelling of a key ("graphql_api_key") to its
// dotted form ("graphql.api_key").
type envKeyMap map[string]string

func envKeys(keys []string) envKeyMap {
	m := make(envKeyMap, len(keys))
	for _, key := range keys {
		m[strings.ReplaceAll(key, ".", "_")] = key
	}
	return m
}

func (m envKeyMap) transform(name, value string) (string, any) {
	name = strings.ToLower(strings.TrimPrefix(name, envPrefix))

	key, ok := m[name]
	if !ok {
		key = strings.ReplaceAll(name, "_", ".")
	}
	if listKeys[key] {
		return key, splitList(value)
	}
	return key, value
}

func splitList(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' '
	})
}
