package globroots

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/fbkclanna/pageroots/internal/config"
	"github.com/fbkclanna/pageroots/internal/fault"
	"github.com/fbkclanna/pageroots/internal/links"
	"github.com/fbkclanna/pageroots/internal/npm"
)

// resolveInclude decides how the scanner reaches one include package's page
// files: by the whole-project pattern alone (project lives inside the
// package), by a plain root-relative include path, or through a forwarding
// symlink under node_modules/.pageroots.
func (r *Resolver) resolveInclude(inc config.Include, defaults config.Defaults) (*GlobRoot, error) {
	name := inc.Package

	// Logical path for relative-path math, physical path for the allow-list.
	logicalJSON, err := npm.Resolve(name, npm.ResolveOpts{Root: r.Root, PreserveSymlinks: true})
	if err != nil {
		return nil, err
	}
	logicalDir := filepath.Dir(logicalJSON)

	physDir, manifest, err := npm.Load(name, npm.ResolveOpts{Root: r.Root})
	if err != nil {
		return nil, err
	}
	if manifest.PageFilesDir != "" {
		return nil, fault.Usagef("the pageFilesDir field in its package.json is deprecated and no longer supported; remove it and set pages_dir for %s in %s instead", name, config.FileName)
	}

	root := filepath.ToSlash(r.Root)
	phys := filepath.ToSlash(physDir)
	pagesSub := inc.EffectivePagesDir(defaults)

	// Project inside the package (monorepo example setups): the
	// whole-project "/" pattern already covers its files, so the allow-root
	// alone suffices.
	if isWithin(root, phys) {
		log.Debug("project root lives inside package", "package", name, "dir", phys)
		return &GlobRoot{FSAllowRoot: phys}, nil
	}

	pagesDir := joinSlash(phys, pagesSub)
	if isWithin(root, pagesDir) {
		return nil, fault.Usagef("its pages directory %s contains the project root %s and cannot be expressed as a root-relative include; set pages_dir for %s in %s to a directory that does not contain the project", pagesDir, root, name, config.FileName)
	}

	rel, err := filepath.Rel(r.Root, logicalDir)
	if err != nil {
		return nil, fmt.Errorf("computing path from project root to %s: %w", logicalDir, err)
	}
	rel = filepath.ToSlash(rel)
	if !escapesUpward(rel) {
		includePath := joinSlash(rel, pagesSub)
		log.Debug("package reachable by relative path", "package", name, "include", includePath)
		return &GlobRoot{FSAllowRoot: phys, IncludePath: includePath}, nil
	}

	// The install location is not reachable from the project root without
	// parent traversal (hoisted or workspace layouts). Forward it through a
	// symlink under node_modules/.pageroots.
	includePath := joinSlash(joinSlash("node_modules/"+links.Dir, name), pagesSub)
	linkPath := filepath.Join(r.Root, filepath.FromSlash(includePath))

	if isWithin(root, pagesDir) {
		return nil, fault.Internalf("pages directory %s contains the project root %s but was not rejected earlier", pagesDir, root)
	}
	if isWithin(filepath.ToSlash(linkPath), pagesDir) {
		return nil, fault.Internalf("forwarding symlink %s would live inside its own target %s", linkPath, pagesDir)
	}

	if err := links.Ensure(linkPath, filepath.FromSlash(pagesDir)); err != nil {
		return nil, err
	}
	log.Debug("forwarding symlink ensured", "package", name, "link", linkPath, "target", pagesDir)
	return &GlobRoot{FSAllowRoot: phys, IncludePath: includePath}, nil
}

// isWithin reports whether p equals dir or lies underneath it. Both paths
// must be absolute and in forward-slash form.
func isWithin(p, dir string) bool {
	return p == dir || strings.HasPrefix(p, dir+"/")
}

// escapesUpward reports whether a relative path begins with a
// parent-traversal segment.
func escapesUpward(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, "../")
}

// joinSlash joins two forward-slash paths, tolerating an empty second part.
func joinSlash(a, b string) string {
	if b == "" {
		return a
	}
	return path.Join(a, b)
}
