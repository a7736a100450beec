package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WritePackage creates node_modules/<name>/package.json under root with a
// minimal manifest and returns the package directory.
func WritePackage(t *testing.T, root, name string) string {
	t.Helper()
	manifest := fmt.Sprintf("{\n  \"name\": %q,\n  \"version\": \"1.0.0\"\n}\n", name)
	return WritePackageManifest(t, root, name, manifest)
}

// WritePackageManifest creates node_modules/<name>/package.json under root
// with the given raw manifest content and returns the package directory.
func WritePackageManifest(t *testing.T, root, name, manifest string) string {
	t.Helper()
	dir := filepath.Join(root, "node_modules", filepath.FromSlash(name))
	WriteFile(t, filepath.Join(dir, "package.json"), manifest)
	return dir
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec // test fixture
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test fixture
		t.Fatal(err)
	}
}

// Symlink creates a symlink at link pointing at target, creating parent
// directories as needed.
func Symlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(link), 0755); err != nil { //nolint:gosec // test fixture
		t.Fatal(err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("creating symlink %s -> %s: %v", link, target, err)
	}
}
