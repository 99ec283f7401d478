package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nao1215/solarreport/internal/model"
	"gopkg.in/yaml.v3"
)

// Load reads and validates the catalog file at path.
func Load(path string) (*model.Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided catalog path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, path)
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalog document. An empty document
// yields an empty catalog.
func Parse(data []byte) (*model.Catalog, error) {
	var c model.Catalog

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every planet and moon has an id and that planet
// ids are unique.
func Validate(c *model.Catalog) error {
	seen := make(map[string]bool, len(c.Planets))
	for i, p := range c.Planets {
		if strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("planet #%d: %w", i+1, ErrMissingID)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicatePlanet, p.ID)
		}
		seen[p.ID] = true

		for j, m := range p.Moons {
			if strings.TrimSpace(m.ID) == "" {
				return fmt.Errorf("planet %q moon #%d: %w", p.ID, j+1, ErrMissingID)
			}
		}
	}

	for i, m := range c.Moons {
		if strings.TrimSpace(m.ID) == "" {
			return fmt.Errorf("moon #%d: %w", i+1, ErrMissingID)
		}
	}
	return nil
}
