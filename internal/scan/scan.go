// Package scan is a minimal page-file scanner built on the glob-root
// contract: it unions the package allow-roots into a filesystem allow-list,
// globs under the project root and each root-relative include prefix, and
// takes dist entries verbatim. It refuses to read anything that resolves
// outside the allow-list.
package scan

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/fbkclanna/pageroots/internal/fault"
	"github.com/fbkclanna/pageroots/internal/globroots"
)

// Run globs for page files under the given glob roots and returns matched
// paths relative to the project root, in forward-slash form, sorted and
// deduplicated. patterns are doublestar globs like "**/*.page.js".
func Run(root string, roots []globroots.GlobRoot, patterns []string) ([]string, error) {
	allow := allowList(root, roots)

	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, gr := range roots {
		switch {
		case gr.IncludePageFile != "":
			// Pre-built artifact, included verbatim with no crawling.
			add(gr.IncludePageFile)

		case gr.IncludePath == "":
			// Allow-root-only entry: the whole-project pattern already
			// covers its files.
			continue

		default:
			matches, err := globUnder(root, gr.IncludePath, patterns, allow)
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				add(m)
			}
		}
	}

	sort.Strings(out)
	return out, nil
}

// globUnder applies patterns below one include prefix, verifying every match
// against the allow-list.
func globUnder(root, includePath string, patterns []string, allow []string) ([]string, error) {
	dir := root
	prefix := ""
	if includePath != "/" {
		dir = filepath.Join(root, filepath.FromSlash(includePath))
		prefix = includePath
	}

	var out []string
	for _, pat := range patterns {
		matches, err := doublestar.Glob(os.DirFS(dir), pat, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fault.Usagef("invalid glob pattern %q: %v", pat, err)
		}
		for _, m := range matches {
			// Matches under node_modules belong to package roots, not the
			// whole-project root.
			if prefix == "" && (m == "node_modules" || strings.HasPrefix(m, "node_modules/")) {
				continue
			}
			if err := checkAllowed(filepath.Join(dir, filepath.FromSlash(m)), allow); err != nil {
				return nil, err
			}
			out = append(out, path.Join(prefix, m))
		}
	}
	return out, nil
}

// allowList returns the directories the scanner may read: the project root
// plus every package allow-root.
func allowList(root string, roots []globroots.GlobRoot) []string {
	allow := []string{filepath.ToSlash(root)}
	for _, gr := range roots {
		if gr.FSAllowRoot != "" {
			allow = append(allow, gr.FSAllowRoot)
		}
	}
	return allow
}

// checkAllowed resolves p through any symlinks and verifies the physical
// location lies under one of the allowed directories.
func checkAllowed(p string, allow []string) error {
	real, err := filepath.EvalSymlinks(p)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", p, err)
	}
	rp := filepath.ToSlash(real)
	for _, a := range allow {
		if rp == a || strings.HasPrefix(rp, a+"/") {
			return nil
		}
	}
	return fmt.Errorf("refusing to read %s: it resolves outside the allowed roots", p)
}
