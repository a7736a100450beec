package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/fbkclanna/pageroots/internal/testutil"
)

func TestRunScan_defaultPattern(t *testing.T) {
	dir := setupProject(t)
	testutil.WriteFile(t, filepath.Join(dir, "pages", "index.page.tsx"), "export {}")
	testutil.WriteFile(t, filepath.Join(dir, "pages", "readme.md"), "docs")

	root := newRootCmd()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"--root", dir, "scan"})
	if err := root.Execute(); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	out := stdout.String()
	if !bytes.Contains(stdout.Bytes(), []byte("pages/index.page.tsx")) {
		t.Errorf("output missing page file:\n%s", out)
	}
	if bytes.Contains(stdout.Bytes(), []byte("readme.md")) {
		t.Errorf("output should not contain non-page file:\n%s", out)
	}
}

func TestRunScan_customPattern(t *testing.T) {
	dir := setupProject(t)
	testutil.WriteFile(t, filepath.Join(dir, "src", "routes.config.ts"), "export {}")

	root := newRootCmd()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"--root", dir, "scan", "**/*.config.*"})
	if err := root.Execute(); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if !bytes.Contains(stdout.Bytes(), []byte("src/routes.config.ts")) {
		t.Errorf("output missing matched file:\n%s", stdout.String())
	}
}

func TestRunScan_includedPackage(t *testing.T) {
	dir := setupProject(t, "ui-kit")
	testutil.WriteFile(t, filepath.Join(dir, "node_modules", "ui-kit", "about.page.js"), "export {}")

	root := newRootCmd()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"--root", dir, "scan"})
	if err := root.Execute(); err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	if !bytes.Contains(stdout.Bytes(), []byte("node_modules/ui-kit/about.page.js")) {
		t.Errorf("output missing package page file:\n%s", stdout.String())
	}
}

func TestRunScan_jsonOutput(t *testing.T) {
	dir := setupProject(t)
	testutil.WriteFile(t, filepath.Join(dir, "index.page.ts"), "export {}")

	root := newRootCmd()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"--root", dir, "scan", "--json"})
	if err := root.Execute(); err != nil {
		t.Fatalf("scan --json failed: %v", err)
	}

	var files []string
	if err := json.Unmarshal(stdout.Bytes(), &files); err != nil {
		t.Fatalf("JSON parse failed: %v\noutput: %s", err, stdout.String())
	}
	if len(files) != 1 || files[0] != "index.page.ts" {
		t.Errorf("files = %v, want [index.page.ts]", files)
	}
}

func TestRunScan_noConfigError(t *testing.T) {
	dir := t.TempDir()

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--root", dir, "scan"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error when no pageroots.yaml exists")
	}
}
