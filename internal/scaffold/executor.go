// Package scaffold turns a resolved flow into a project directory: it clears
// the target, clones the template, rewrites the package descriptor, and
// strips repository artifacts.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/opmodel/starter/internal/config"
	oerrors "github.com/opmodel/starter/internal/errors"
	"github.com/opmodel/starter/internal/flow"
	"github.com/opmodel/starter/internal/output"
)

// vcsDir is removed from every scaffold.
const vcsDir = ".git"

// ErrTemplateUnavailable is returned when the flow finished without a template.
var ErrTemplateUnavailable = oerrors.NewNotFoundError(
	"template not available",
	"",
	"run 'starter templates' to list available templates",
)

// Result describes a finished scaffold.
type Result struct {
	// Dir is the absolute project directory.
	Dir string
	// Files lists project files relative to Dir, sorted.
	Files []string
	// Descriptor is nil when the template has no package descriptor.
	Descriptor *DescriptorChange
	// Warnings collects artifact removals that failed.
	Warnings []string
}

// Executor performs the side effects of a scaffold.
type Executor struct {
	Cloner Cloner
	// Lockfiles are removed after cloning. Nil means config.DefaultLockfiles.
	Lockfiles []string
	// Logger defaults to a logger scoped to the project name.
	Logger *log.Logger
}

// Execute scaffolds cfg. Steps are not rolled back: a failed clone leaves
// whatever was written in place.
func (e *Executor) Execute(ctx context.Context, cfg *flow.ResolvedConfig) (*Result, error) {
	if cfg == nil || cfg.Template == nil {
		return nil, ErrTemplateUnavailable
	}
	if e.Cloner == nil {
		return nil, fmt.Errorf("scaffold: no cloner configured")
	}

	logger := e.Logger
	if logger == nil {
		logger = output.ProjectLogger(cfg.ProjectName)
	}

	dir := cfg.Dir()
	res := &Result{Dir: dir}

	if err := clearTarget(dir, cfg.Cwd); err != nil {
		return nil, err
	}

	logger.Debug("cloning template", "template", cfg.Template.Name, "url", cfg.Template.SourceURL, "method", e.Cloner.Name())
	err := output.RunWithSpinner(ctx, func(ctx context.Context) error {
		return e.Cloner.Clone(ctx, cfg.Template.SourceURL, dir)
	}, output.WithTitle("Cloning "+cfg.Template.Name+"..."))
	if err != nil {
		logger.Error("clone failed", "template", cfg.Template.Name, "err", err)
		return nil, fmt.Errorf("cloning template %q: %w", cfg.Template.Name, err)
	}

	name := cfg.PackageName
	if name == "" {
		name = cfg.ProjectName
	}
	change, err := rewriteDescriptor(dir, name)
	if err != nil {
		logger.Error("descriptor rewrite failed", "file", DescriptorFile, "err", err)
		return nil, fmt.Errorf("rewriting %s: %w", DescriptorFile, err)
	}
	if change != nil {
		res.Descriptor = change
		logger.Debug("descriptor rewritten", "from", change.OldName, "to", change.NewName)
	}

	lockfiles := e.Lockfiles
	if lockfiles == nil {
		lockfiles = config.DefaultLockfiles
	}
	for _, artifact := range append([]string{vcsDir}, lockfiles...) {
		path := filepath.Join(dir, artifact)
		if err := os.RemoveAll(path); err != nil {
			logger.Warn("could not remove artifact", "path", artifact, "err", err)
			res.Warnings = append(res.Warnings, fmt.Sprintf("could not remove %s: %v", artifact, err))
			continue
		}
	}

	files, err := listFiles(dir)
	if err != nil {
		logger.Warn("could not list project files", "err", err)
	}
	res.Files = files

	logger.Debug("scaffold complete", "dir", dir, "files", len(files))
	return res, nil
}

// clearTarget removes an existing target. The working directory itself is
// kept and only its entries are removed.
func clearTarget(dir, cwd string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("inspecting %s: %w", dir, err)
	}
	if !info.IsDir() {
		if err := os.Remove(dir); err != nil {
			return permissionAware(err, dir)
		}
		return nil
	}

	if filepath.Clean(dir) != filepath.Clean(cwd) {
		if err := os.RemoveAll(dir); err != nil {
			return permissionAware(err, dir)
		}
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return permissionAware(err, dir)
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return permissionAware(err, dir)
		}
	}
	return nil
}

func permissionAware(err error, dir string) error {
	if errors.Is(err, fs.ErrPermission) {
		return oerrors.NewPermissionError(
			"cannot clear target directory",
			map[string]string{"Directory": dir, "Cause": err.Error()},
			"check the directory's permissions or choose another target",
		)
	}
	return fmt.Errorf("clearing %s: %w", dir, err)
}

func listFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(files)
	return files, err
}
