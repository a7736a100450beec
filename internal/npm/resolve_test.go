package npm

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/fbkclanna/pageroots/internal/fault"
	"github.com/fbkclanna/pageroots/internal/testutil"
)

func TestResolve_direct(t *testing.T) {
	root := t.TempDir()
	pkgDir := testutil.WritePackage(t, root, "ui-kit")

	got, err := Resolve("ui-kit", ResolveOpts{Root: root, PreserveSymlinks: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(pkgDir, "package.json")
	if got != want {
		t.Errorf("resolved path = %q, want %q", got, want)
	}
}

func TestResolve_scoped(t *testing.T) {
	root := t.TempDir()
	pkgDir := testutil.WritePackage(t, root, "@acme/pages")

	got, err := Resolve("@acme/pages", ResolveOpts{Root: root, PreserveSymlinks: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join(pkgDir, "package.json") {
		t.Errorf("resolved path = %q", got)
	}
}

func TestResolve_walksUpward(t *testing.T) {
	root := t.TempDir()
	pkgDir := testutil.WritePackage(t, root, "ui-kit")
	nested := filepath.Join(root, "apps", "web")

	got, err := Resolve("ui-kit", ResolveOpts{Root: nested, PreserveSymlinks: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join(pkgDir, "package.json") {
		t.Errorf("resolved path = %q, want parent-level install", got)
	}
}

func TestResolve_notFound(t *testing.T) {
	root := t.TempDir()

	_, err := Resolve("ghost", ResolveOpts{Root: root})
	if err == nil {
		t.Fatal("expected error for missing package")
	}
	if !fault.IsUsage(err) {
		t.Errorf("missing package should be a usage error, got %T", err)
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error should name the package: %v", err)
	}
}

func TestResolve_invalidName(t *testing.T) {
	_, err := Resolve("../evil", ResolveOpts{Root: t.TempDir()})
	if err == nil {
		t.Fatal("expected error for invalid name")
	}
	if !fault.IsUsage(err) {
		t.Errorf("invalid name should be a usage error, got %T", err)
	}
}

func TestResolve_symlinkModes(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "app")

	// The package physically lives outside the project; node_modules holds
	// a symlink to it (pnpm/workspace style install).
	physDir := filepath.Join(base, "store", "ui-kit")
	testutil.WriteFile(t, filepath.Join(physDir, "package.json"), `{"name": "ui-kit", "version": "1.0.0"}`)
	linkDir := filepath.Join(root, "node_modules", "ui-kit")
	testutil.Symlink(t, physDir, linkDir)

	logical, err := Resolve("ui-kit", ResolveOpts{Root: root, PreserveSymlinks: true})
	if err != nil {
		t.Fatalf("unexpected error (preserve): %v", err)
	}
	if logical != filepath.Join(linkDir, "package.json") {
		t.Errorf("logical path = %q, want the symlinked install location", logical)
	}

	physical, err := Resolve("ui-kit", ResolveOpts{Root: root})
	if err != nil {
		t.Fatalf("unexpected error (follow): %v", err)
	}
	// t.TempDir may itself sit behind symlinks (e.g. /tmp on macOS), so
	// compare against the fully resolved fixture path.
	wantDir, err := filepath.EvalSymlinks(physDir)
	if err != nil {
		t.Fatal(err)
	}
	if physical != filepath.Join(wantDir, "package.json") {
		t.Errorf("physical path = %q, want %q", physical, filepath.Join(wantDir, "package.json"))
	}
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	pkgDir := testutil.WritePackageManifest(t, root, "ui-kit", `{"name": "ui-kit", "version": "2.3.4"}`)

	dir, m, err := Load("ui-kit", ResolveOpts{Root: root, PreserveSymlinks: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != pkgDir {
		t.Errorf("dir = %q, want %q", dir, pkgDir)
	}
	if m.Name != "ui-kit" || m.Version != "2.3.4" {
		t.Errorf("manifest = %+v", m)
	}
}

func TestLoad_badJSON(t *testing.T) {
	root := t.TempDir()
	testutil.WritePackageManifest(t, root, "broken", `{not json`)

	_, _, err := Load("broken", ResolveOpts{Root: root, PreserveSymlinks: true})
	if err == nil {
		t.Fatal("expected error for malformed package.json")
	}
}
