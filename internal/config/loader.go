package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for starter configuration.
const envPrefix = "STARTER"

// Loader handles loading and merging configuration from file and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("catalog.owner", "STARTER_OWNER")
	_ = v.BindEnv("catalog.apiURL", "STARTER_API_URL")
	_ = v.BindEnv("catalog.token", "STARTER_GITHUB_TOKEN", "GITHUB_TOKEN")
	_ = v.BindEnv("clone.method", "STARTER_CLONE_METHOD")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// A missing file is not an error; environment variables still apply.
func (l *Loader) Load(configFile string) (*Config, error) {
	path := ExpandTilde(configFile)

	l.v.SetConfigFile(path)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and applies defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}
	return cfg.WithDefaults(), nil
}
