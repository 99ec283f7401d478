package config

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Paths is a list of file paths that may be written in YAML either as a
// single string or as a sequence.
type Paths []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Paths) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		if s == "" {
			*p = nil
			return nil
		}
		*p = Paths{s}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*p = list
		return nil
	default:
		return fmt.Errorf("line %d: catalog must be a path or a list of paths", node.Line)
	}
}

// File represents the structure of the .solarreport configuration file.
// Every field is optional; empty fields leave the defaults in place.
type File struct {
	// Catalog is one or more catalog files. Relative paths are resolved
	// against the directory containing the configuration file.
	Catalog Paths `yaml:"catalog,omitempty"`

	// DBDir overrides the SQLite store directory.
	DBDir string `yaml:"dbDir,omitempty"`

	// Format is "text" or "markdown".
	Format string `yaml:"format,omitempty"`

	// Language is a BCP 47 tag such as "fr".
	Language string `yaml:"language,omitempty"`

	// Reports lists the reports to run by default.
	Reports []string `yaml:"reports,omitempty"`
}

// resolve makes relative catalog paths relative to baseDir.
func (f *File) resolve(baseDir string) {
	for i, path := range f.Catalog {
		if !filepath.IsAbs(path) {
			f.Catalog[i] = filepath.Join(baseDir, path)
		}
	}
	if f.DBDir != "" && !filepath.IsAbs(f.DBDir) {
		f.DBDir = filepath.Join(baseDir, f.DBDir)
	}
}

// Apply copies every non-empty field of f onto c.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	if len(f.Catalog) > 0 {
		c.Catalogs = append([]string(nil), f.Catalog...)
	}
	if f.DBDir != "" {
		c.DBDir = f.DBDir
	}
	if f.Format != "" {
		c.Format = f.Format
	}
	if f.Language != "" {
		c.Language = f.Language
	}
	if len(f.Reports) > 0 {
		c.Reports = append([]string(nil), f.Reports...)
	}
}
