// Package links manages the forwarding symlink directory pageroots keeps
// under a project's node_modules. When an include package is not reachable by
// a root-relative path, a symlink under node_modules/.pageroots makes it
// reachable; the symlink persists across runs and acts as a cross-call cache.
package links

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Dir is the namespace directory name under node_modules.
const Dir = ".pageroots"

// DirPath returns the absolute namespace directory for a project root.
func DirPath(root string) string {
	return filepath.Join(root, "node_modules", Dir)
}

// Ensure creates a symlink at link pointing at target. A pre-existing entry
// at link is left untouched (no overwrite, no staleness check). Losing a
// creation race to a concurrent build is harmless: the same link and target
// converge to the same result, so an "already exists" failure is swallowed.
func Ensure(link, target string) error {
	if _, err := os.Lstat(link); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil { //nolint:gosec // link dir lives under the project's node_modules
		return fmt.Errorf("creating forwarding directory: %w", err)
	}
	if err := os.Symlink(target, link); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("creating forwarding symlink %s -> %s: %w", link, target, err)
	}
	return nil
}

// Link describes one forwarding symlink.
type Link struct {
	// Name is the link path relative to the namespace directory,
	// i.e. the package name plus any pages subdirectory.
	Name string
	// Target is the symlink's target path as written on disk.
	Target string
	// Broken reports whether the target no longer resolves.
	Broken bool
}

// List enumerates the forwarding symlinks under the project's namespace
// directory, sorted by name. A missing namespace directory yields no links.
func List(root string) ([]Link, error) {
	dir := DirPath(root)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading forwarding directory: %w", err)
	}

	var out []Link
	walkErr := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type()&fs.ModeSymlink == 0 {
			return nil
		}
		target, err := os.Readlink(p)
		if err != nil {
			return fmt.Errorf("reading symlink %s: %w", p, err)
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		_, statErr := os.Stat(p)
		out = append(out, Link{
			Name:   filepath.ToSlash(rel),
			Target: target,
			Broken: statErr != nil,
		})
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Clean removes the entire namespace directory. Resolution recreates any
// still-needed links on the next run.
func Clean(root string) error {
	if err := os.RemoveAll(DirPath(root)); err != nil {
		return fmt.Errorf("removing forwarding directory: %w", err)
	}
	return nil
}
