// Package config provides configuration loading and management.
package config

// Clone methods.
const (
	// CloneMethodGoGit clones in-process with go-git.
	CloneMethodGoGit = "go-git"

	// CloneMethodGit shells out to the git binary.
	CloneMethodGit = "git"
)

// Defaults.
const (
	// DefaultOwner is the account whose template repositories form the catalog.
	DefaultOwner = "starter-templates"

	// DefaultAPIURL is the GitHub REST API endpoint.
	DefaultAPIURL = "https://api.github.com/"

	// DefaultPerPage is the catalog page size (the service maximum).
	DefaultPerPage = 100

	// DefaultCloneDepth is the history depth fetched when cloning a template.
	DefaultCloneDepth = 1
)

// DefaultLockfiles are removed from every scaffold.
var DefaultLockfiles = []string{
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"bun.lockb",
	"bun.lock",
}

// CatalogConfig contains template catalog settings.
type CatalogConfig struct {
	// Owner is the account that owns the template repositories.
	// Env: STARTER_OWNER
	Owner string `mapstructure:"owner" yaml:"owner,omitempty" json:"owner,omitempty"`

	// APIURL is the base URL of the GitHub REST API.
	// Env: STARTER_API_URL
	APIURL string `mapstructure:"apiURL" yaml:"apiURL,omitempty" json:"apiURL,omitempty"`

	// Token authenticates catalog requests for higher rate limits.
	// Env: STARTER_GITHUB_TOKEN, GITHUB_TOKEN
	Token string `mapstructure:"token" yaml:"token,omitempty" json:"-"`

	// PerPage is the number of repositories requested per page.
	PerPage int `mapstructure:"perPage" yaml:"perPage,omitempty" json:"perPage,omitempty"`
}

// CloneConfig contains clone settings.
type CloneConfig struct {
	// Method selects the clone implementation: "go-git" (default) or "git".
	// Env: STARTER_CLONE_METHOD
	Method string `mapstructure:"method" yaml:"method,omitempty" json:"method,omitempty"`

	// Depth is the history depth to fetch. Zero means DefaultCloneDepth,
	// a negative value fetches the full history.
	Depth int `mapstructure:"depth" yaml:"depth,omitempty" json:"depth,omitempty"`
}

// CleanupConfig contains post-clone cleanup settings.
type CleanupConfig struct {
	// Lockfiles are removed from the scaffold root after cloning.
	Lockfiles []string `mapstructure:"lockfiles" yaml:"lockfiles,omitempty" json:"lockfiles,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty" json:"timestamps,omitempty"`
}

// Config represents the starter CLI configuration, loaded from ~/.starter/config.yaml.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog" json:"catalog"`
	Clone   CloneConfig   `mapstructure:"clone" yaml:"clone" json:"clone"`
	Cleanup CleanupConfig `mapstructure:"cleanup" yaml:"cleanup" json:"cleanup"`
	Log     LogConfig     `mapstructure:"log" yaml:"log" json:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `starter config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Catalog: CatalogConfig{
			Owner:   DefaultOwner,
			APIURL:  DefaultAPIURL,
			PerPage: DefaultPerPage,
		},
		Clone: CloneConfig{
			Method: CloneMethodGoGit,
			Depth:  DefaultCloneDepth,
		},
		Cleanup: CleanupConfig{
			Lockfiles: append([]string(nil), DefaultLockfiles...),
		},
		Log: LogConfig{
			Timestamps: &timestamps,
		},
	}
}

// WithDefaults returns a copy of c with unset fields filled from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}

	out := *c
	if out.Catalog.Owner == "" {
		out.Catalog.Owner = d.Catalog.Owner
	}
	if out.Catalog.APIURL == "" {
		out.Catalog.APIURL = d.Catalog.APIURL
	}
	if out.Catalog.PerPage <= 0 {
		out.Catalog.PerPage = d.Catalog.PerPage
	}
	if out.Clone.Method == "" {
		out.Clone.Method = d.Clone.Method
	}
	if out.Clone.Depth == 0 {
		out.Clone.Depth = d.Clone.Depth
	}
	if out.Cleanup.Lockfiles == nil {
		out.Cleanup.Lockfiles = d.Cleanup.Lockfiles
	}
	return &out
}
