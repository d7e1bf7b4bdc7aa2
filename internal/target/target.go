// Package target resolves the directory a project is scaffolded into.
package target

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/opmodel/starter/internal/naming"
)

// DefaultTargetDir is used when neither an argument nor an answer names a directory.
const DefaultTargetDir = "my-project"

// CurrentDir is the sentinel for scaffolding into the working directory.
const CurrentDir = "."

// vcsDir is the only entry tolerated in an otherwise empty target.
const vcsDir = ".git"

// Resolve picks the target directory: the positional argument, then the
// interactive answer, then DefaultTargetDir. Values are normalized first and
// empty results fall through.
func Resolve(arg string, answer *string) string {
	if dir := naming.FormatTargetDirString(arg); dir != "" {
		return dir
	}
	if answer != nil {
		if dir := naming.FormatTargetDirString(*answer); dir != "" {
			return dir
		}
	}
	return DefaultTargetDir
}

// IsEmpty reports whether dir has no entries, or only a .git entry.
// A directory that does not exist counts as empty.
func IsEmpty(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, err
	}
	switch len(entries) {
	case 0:
		return true, nil
	case 1:
		return entries[0].Name() == vcsDir, nil
	default:
		return false, nil
	}
}

// NeedsOverwrite reports whether dir exists with content that would be destroyed.
// A non-directory at dir always needs overwriting.
func NeedsOverwrite(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if !info.IsDir() {
		return true, nil
	}
	empty, err := IsEmpty(dir)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// ProjectName derives the project name from the target directory. For the
// current-directory sentinel it is the base name of cwd.
func ProjectName(targetDir, cwd string) string {
	if targetDir == CurrentDir {
		return filepath.Base(filepath.Clean(cwd))
	}
	return targetDir
}

// AbsPath joins targetDir onto cwd unless targetDir is already absolute.
func AbsPath(cwd, targetDir string) string {
	if filepath.IsAbs(targetDir) {
		return filepath.Clean(targetDir)
	}
	return filepath.Join(cwd, targetDir)
}
