package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fbkclanna/pageroots/internal/fault"
	"github.com/fbkclanna/pageroots/internal/npm"
)

// Validate checks the configuration for errors.
func Validate(cfg *Config) error { return validate(cfg) }

// Save validates and writes a configuration to disk.
func Save(path string, cfg *Config) error {
	if err := validate(cfg); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // config file needs to be readable
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Load reads and validates a pageroots.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the project config file path
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates pageroots.yaml content.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fault.Usagef("parsing config YAML: %v", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fault.Usagef("config: unsupported version: %d (expected 1)", cfg.Version)
	}
	if cfg.Name == "" {
		return fault.Usagef("config: name is required")
	}

	if err := validateSubdir(cfg.Defaults.PagesDir, "defaults.pages_dir"); err != nil {
		return err
	}

	seen := make(map[string]bool, len(cfg.Include))
	for i, inc := range cfg.Include {
		if err := validateInclude(i, inc, seen); err != nil {
			return err
		}
		seen[inc.Package] = true
	}

	for i, p := range cfg.IncludeDist {
		if p == "" {
			return fault.Usagef("config: include_dist[%d] is empty", i)
		}
		if err := validateSubdir(p, fmt.Sprintf("include_dist[%d]", i)); err != nil {
			return err
		}
	}

	return nil
}

func validateInclude(i int, inc Include, seen map[string]bool) error {
	if inc.Package == "" {
		return fault.Usagef("config: include[%d].package is required", i)
	}
	if !npm.ValidName(inc.Package) {
		return fault.Usagef("config: include[%d].package %q is not a valid npm package name (paths and glob patterns are not accepted here)", i, inc.Package)
	}
	if seen[inc.Package] {
		return fault.Usagef("config: duplicate include package %q", inc.Package)
	}
	if inc.PagesDir != nil {
		label := fmt.Sprintf("include[%d] (%s).pages_dir", i, inc.Package)
		if err := validateSubdir(*inc.PagesDir, label); err != nil {
			return err
		}
	}
	return nil
}

// validateSubdir ensures a path is relative and does not escape upward.
func validateSubdir(p, label string) error {
	if p == "" {
		return nil
	}
	if filepath.IsAbs(p) {
		return fault.Usagef("config: %s: absolute path is not allowed: %s", label, p)
	}
	cleaned := filepath.Clean(p)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fault.Usagef("config: %s: path must not escape the project (contains ..): %s", label, p)
	}
	return nil
}
