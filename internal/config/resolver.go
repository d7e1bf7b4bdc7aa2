package config

import (
	"os"

	"github.com/opmodel/starter/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a single configuration value with its provenance.
type ResolvedValue struct {
	// Key is the configuration key (e.g., "catalog.owner").
	Key string
	// Value is the winning value.
	Value string
	// Source indicates where Value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveValueOptions describes the candidate values for one key.
type ResolveValueOptions struct {
	Key         string
	FlagValue   string
	EnvVars     []string
	ConfigValue string
	Default     string
}

// ResolveValue resolves a value using precedence: flag > env > config > default.
// The first non-empty env var in EnvVars wins over later ones.
func ResolveValue(opts ResolveValueOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	var envValue string
	for _, name := range opts.EnvVars {
		if v := os.Getenv(name); v != "" {
			envValue = v
			break
		}
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, opts.FlagValue},
		{SourceEnv, envValue},
		{SourceConfig, opts.ConfigValue},
		{SourceDefault, opts.Default},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}

	return result
}

// ResolveConfigPath resolves the config file path: --config flag > STARTER_CONFIG > default.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	return ResolveValue(ResolveValueOptions{
		Key:       "config",
		FlagValue: flagValue,
		EnvVars:   []string{"STARTER_CONFIG"},
		Default:   paths.ConfigFile,
	}), nil
}

// ResolveOptions carries flag values for ResolveAll.
type ResolveOptions struct {
	OwnerFlag       string
	CloneMethodFlag string
	Config          *Config
}

// Resolved holds the resolved values used by the scaffold command.
type Resolved struct {
	Owner       ResolvedValue
	APIURL      ResolvedValue
	CloneMethod ResolvedValue
}

// ResolveAll resolves all flag-overridable values against env, config, and defaults.
func ResolveAll(opts ResolveOptions) *Resolved {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	return &Resolved{
		Owner: ResolveValue(ResolveValueOptions{
			Key:         "catalog.owner",
			FlagValue:   opts.OwnerFlag,
			EnvVars:     []string{"STARTER_OWNER"},
			ConfigValue: cfg.Catalog.Owner,
			Default:     DefaultOwner,
		}),
		APIURL: ResolveValue(ResolveValueOptions{
			Key:         "catalog.apiURL",
			EnvVars:     []string{"STARTER_API_URL"},
			ConfigValue: cfg.Catalog.APIURL,
			Default:     DefaultAPIURL,
		}),
		CloneMethod: ResolveValue(ResolveValueOptions{
			Key:         "clone.method",
			FlagValue:   opts.CloneMethodFlag,
			EnvVars:     []string{"STARTER_CLONE_METHOD"},
			ConfigValue: cfg.Clone.Method,
			Default:     CloneMethodGoGit,
		}),
	}
}

// Values returns the resolved values in a stable order.
func (r *Resolved) Values() []ResolvedValue {
	return []ResolvedValue{r.Owner, r.APIURL, r.CloneMethod}
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
