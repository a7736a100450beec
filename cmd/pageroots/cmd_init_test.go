package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/fbkclanna/pageroots/internal/config"
	"github.com/fbkclanna/pageroots/internal/testutil"
)

func TestRunInit_fromFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "template.yaml")
	testutil.WriteFile(t, src, "version: 1\nname: template\ninclude:\n  - package: ui-kit\n")

	root := newRootCmd()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"--root", dir, "init", "my-app", "--from", src})
	if err := root.Execute(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Name != "my-app" {
		t.Errorf("name = %q, want %q (overridden by argument)", cfg.Name, "my-app")
	}
	if len(cfg.Include) != 1 || cfg.Include[0].Package != "ui-kit" {
		t.Errorf("include = %+v, want ui-kit carried over", cfg.Include)
	}
}

func TestRunInit_existingConfigError(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, config.FileName), "version: 1\nname: old\n")
	src := filepath.Join(dir, "template.yaml")
	testutil.WriteFile(t, src, "version: 1\nname: template\n")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--root", dir, "init", "my-app", "--from", src})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for existing configuration without --force")
	}
}

func TestRunInit_forceOverwrites(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, config.FileName), "version: 1\nname: old\n")
	src := filepath.Join(dir, "template.yaml")
	testutil.WriteFile(t, src, "version: 1\nname: template\n")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--root", dir, "init", "my-app", "--from", src, "--force"})
	if err := root.Execute(); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Name != "my-app" {
		t.Errorf("name = %q, want %q", cfg.Name, "my-app")
	}
}

func TestRunInit_invalidFromError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.yaml")
	testutil.WriteFile(t, src, "version: 99\nname: x\n")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--root", dir, "init", "my-app", "--from", src})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for invalid --from configuration")
	}
}

func TestRunInit_missingFromFileError(t *testing.T) {
	dir := t.TempDir()

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--root", dir, "init", "my-app", "--from", filepath.Join(dir, "missing.yaml")})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for missing --from file")
	}
}

func TestRunInit_noTTYWithoutFromError(t *testing.T) {
	dir := t.TempDir()

	// Tests never run with stdin attached to a TTY, so interactive init
	// must refuse.
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--root", dir, "init", "my-app"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for interactive init without a TTY")
	}
}
