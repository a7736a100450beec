package config

// FileName is the project configuration file pageroots looks for.
const FileName = "pageroots.yaml"

// Config represents the top-level pageroots.yaml file.
type Config struct {
	Version     int       `yaml:"version"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Defaults    Defaults  `yaml:"defaults,omitempty"`
	Include     []Include `yaml:"include,omitempty"`
	IncludeDist []string  `yaml:"include_dist,omitempty"`
}

// Defaults defines options applied to all include entries unless overridden
// at the entry level.
type Defaults struct {
	PagesDir string `yaml:"pages_dir,omitempty"`
}

// Include names one npm package that contributes page files.
type Include struct {
	Package string `yaml:"package"`

	// PagesDir is the subdirectory of the package that holds page files.
	// Empty string means the package root itself; nil falls back to defaults.
	PagesDir *string `yaml:"pages_dir,omitempty"`
}

// EffectivePagesDir returns the pages subdirectory for this entry, falling
// back to defaults. Empty means the package root.
func (i Include) EffectivePagesDir(d Defaults) string {
	if i.PagesDir != nil {
		return *i.PagesDir
	}
	return d.PagesDir
}
