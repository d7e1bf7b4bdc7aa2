package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for starter.
type Paths struct {
	// ConfigFile is the path to the config file (~/.starter/config.yaml).
	ConfigFile string

	// HomeDir is the starter home directory (~/.starter).
	HomeDir string
}

// DefaultPaths returns the default paths for starter.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	starterHome := filepath.Join(homeDir, ".starter")

	return &Paths{
		ConfigFile: filepath.Join(starterHome, "config.yaml"),
		HomeDir:    starterHome,
	}, nil
}

// ExpandTilde expands a leading ~ to the user's home directory.
// ~username forms are returned unchanged.
func ExpandTilde(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}

// FileExists reports whether path exists. Errors other than not-exist are returned.
func FileExists(path string) (bool, error) {
	_, err := os.Stat(ExpandTilde(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
