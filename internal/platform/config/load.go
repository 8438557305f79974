package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// ErrInvalidProfile is returned when a profile name is empty or would escape
// the config directory.
var ErrInvalidProfile = errors.New("invalid profile")

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	overrides map[string]any
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithOverrides sets dotted keys (e.g. "assets.dir") above every other
// layer. The terminal wizard maps its command-line flags here.
func WithOverrides(values map[string]any) Option {
	return func(o *loadOptions) {
		o.overrides = values
	}
}

// layer is one source in the precedence stack. parser is nil for providers
// that already yield a key map.
type layer struct {
	name     string
	provider func(k *koanf.Koanf) koanf.Provider
	parser   koanf.Parser
}

// Load reads configuration in layers, later layers winning:
//
//  0. built-in defaults
//  1. {configDir}/base.yaml
//  2. {configDir}/{profile}.yaml
//  3. APP_ environment variables
//  4. WithOverrides values
//
// Environment names are matched against the keys already loaded, so an
// underscore inside a key is not mistaken for nesting:
//
//	APP_SERVER_READ_TIMEOUT            -> server.read_timeout
//	APP_STORAGE_SQLITE_PATH            -> storage.sqlite.path
//	APP_ASSETS_HTTP_RETRY_MAX_ATTEMPTS -> assets.http.retry.max_attempts
//	APP_SESSION_SWEEP_INTERVAL         -> session.sweep_interval
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	layers := []layer{
		{name: "defaults", provider: staticLayer(defaults())},
		{name: "base config", provider: fileLayer(filepath.Join(o.configDir, "base.yaml")), parser: yaml.Parser()},
		{name: "profile config", provider: fileLayer(filepath.Join(o.configDir, profile+".yaml")), parser: yaml.Parser()},
		{name: "environment", provider: envLayer},
	}
	if len(o.overrides) > 0 {
		layers = append(layers, layer{name: "overrides", provider: staticLayer(o.overrides)})
	}

	k := koanf.New(".")
	for _, l := range layers {
		if err := k.Load(l.provider(k), l.parser); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
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

func staticLayer(values map[string]any) func(*koanf.Koanf) koanf.Provider {
	return func(*koanf.Koanf) koanf.Provider {
		return confmap.Provider(values, ".")
	}
}

func fileLayer(path string) func(*koanf.Koanf) koanf.Provider {
	return func(*koanf.Koanf) koanf.Provider {
		return file.Provider(path)
	}
}

// envLayer maps APP_ variables onto the keys loaded so far. Unknown names
// fall back to splitting on every underscore.
func envLayer(k *koanf.Koanf) koanf.Provider {
	known := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
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

func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return fmt.Errorf("%w: empty name", ErrInvalidProfile)
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("%w: %q leaves the config directory", ErrInvalidProfile, profile)
	}
	return nil
}
