package globroots

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/fbkclanna/pageroots/internal/config"
)

// Resolver computes the glob roots for one project.
type Resolver struct {
	// Root is the absolute project directory.
	Root string

	// OnResolved, when set, is called after each include package resolves.
	// Calls may arrive from concurrent goroutines.
	OnResolved func(pkg string)
}

// Resolve returns the ordered glob-root list for cfg: the whole-project root
// first, then one package-derived root per include entry (resolved
// concurrently, configuration order preserved), then one dist root per
// include_dist entry, verbatim. The list is recomputed fresh on every call;
// the only durable side effect is the forwarding symlinks created for
// include packages that are unreachable by a root-relative path.
//
// Resolution is fail-fast: if any include package fails, no partial list is
// returned, since the scanner cannot safely run with an incomplete
// allow-list.
func (r *Resolver) Resolve(cfg *config.Config) ([]GlobRoot, error) {
	results := make([]*GlobRoot, len(cfg.Include))

	var g errgroup.Group
	for i, inc := range cfg.Include {
		i, inc := i, inc
		g.Go(func() error {
			gr, err := r.resolveInclude(inc, cfg.Defaults)
			if err != nil {
				return fmt.Errorf("include package %s: %w", inc.Package, err)
			}
			results[i] = gr
			if r.OnResolved != nil {
				r.OnResolved(inc.Package)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	roots := make([]GlobRoot, 0, 1+len(results)+len(cfg.IncludeDist))
	roots = append(roots, GlobRoot{IncludePath: "/"})
	for _, gr := range results {
		if gr == nil {
			continue
		}
		roots = append(roots, *gr)
	}
	for _, p := range cfg.IncludeDist {
		roots = append(roots, GlobRoot{IncludePageFile: p})
	}
	return roots, nil
}
