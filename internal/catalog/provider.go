package catalog

import (
	"context"

	"github.com/nao1215/solarreport/internal/model"
)

// Provider serves a catalog held in memory. It satisfies both
// report.PlanetProvider and report.MoonProvider.
type Provider struct {
	catalog *model.Catalog
}

// NewProvider creates a Provider for c. A nil catalog behaves as empty.
func NewProvider(c *model.Catalog) *Provider {
	if c == nil {
		c = &model.Catalog{}
	}
	return &Provider{catalog: c}
}

// GetAllPlanets returns the catalog's planets in catalog order.
func (p *Provider) GetAllPlanets(ctx context.Context) ([]model.Planet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.catalog.Planets, nil
}

// GetAllMoons returns every moon: planet moons first, then unattached moons.
func (p *Provider) GetAllMoons(ctx context.Context) ([]model.Moon, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.catalog.AllMoons(), nil
}

// Catalog returns the underlying catalog.
func (p *Provider) Catalog() *model.Catalog {
	return p.catalog
}
