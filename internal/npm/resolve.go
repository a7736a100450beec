package npm

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fbkclanna/pageroots/internal/fault"
)

// Manifest is the subset of package.json that pageroots reads.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`

	// PageFilesDir is a deprecated override that is no longer supported.
	// Resolution rejects any package that still declares it.
	PageFilesDir string `json:"pageFilesDir"`
}

// ResolveOpts controls how a package is located.
type ResolveOpts struct {
	// Root is the directory the node_modules walk starts from.
	Root string

	// PreserveSymlinks stops resolution at the install location as written
	// on disk (the logical path, as seen through any symlinks). When false,
	// resolution follows symlinks to the real directory (the physical path).
	PreserveSymlinks bool
}

// Resolve locates name's package.json by probing node_modules in opts.Root
// and each parent directory, Node-style. It returns the absolute path to
// package.json, honoring opts.PreserveSymlinks.
func Resolve(name string, opts ResolveOpts) (string, error) {
	if !ValidName(name) {
		return "", fault.Usagef("invalid package name %q: expected a bare name like %q or a scoped name like %q", name, "some-pkg", "@scope/some-pkg")
	}

	dir, err := filepath.Abs(opts.Root)
	if err != nil {
		return "", fmt.Errorf("resolving search root: %w", err)
	}

	for {
		pkgDir := filepath.Join(dir, "node_modules", filepath.FromSlash(name))
		pkgJSON := filepath.Join(pkgDir, "package.json")
		if _, statErr := os.Stat(pkgJSON); statErr == nil {
			if opts.PreserveSymlinks {
				return pkgJSON, nil
			}
			real, evalErr := filepath.EvalSymlinks(pkgDir)
			if evalErr != nil {
				return "", fmt.Errorf("resolving real path of package %s: %w", name, evalErr)
			}
			return filepath.Join(real, "package.json"), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fault.Usagef("package %q not found from %s: is it installed? (run your package manager's install, e.g. npm install)", name, opts.Root)
}

// Load resolves a package and parses its package.json. It returns the
// package's root directory (the parent of package.json) and the parsed
// manifest.
func Load(name string, opts ResolveOpts) (string, *Manifest, error) {
	pkgJSON, err := Resolve(name, opts)
	if err != nil {
		return "", nil, err
	}

	data, err := os.ReadFile(pkgJSON) //nolint:gosec // path comes from package resolution
	if err != nil {
		return "", nil, fmt.Errorf("reading %s: %w", pkgJSON, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return "", nil, fmt.Errorf("parsing %s: %w", pkgJSON, err)
	}

	return filepath.Dir(pkgJSON), &m, nil
}
