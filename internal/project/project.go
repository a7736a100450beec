// Package project integrates config loading with project path resolution.
// It provides the Context type that holds the resolved project root and the
// loaded configuration.
package project

import (
	"fmt"
	"path/filepath"

	"github.com/fbkclanna/pageroots/internal/config"
)

// Context holds the resolved paths and loaded config for a project.
type Context struct {
	Root       string
	ConfigPath string
	Config     *config.Config
}

// Load resolves the project root and loads its configuration.
func Load(root string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}

	configPath := filepath.Join(root, config.FileName)
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	return &Context{
		Root:       root,
		ConfigPath: configPath,
		Config:     cfg,
	}, nil
}
