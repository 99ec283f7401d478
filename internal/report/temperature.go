package report

import (
	"context"

	"github.com/nao1215/solarreport/internal/model"
)

// PlanetsAverageMoonTemperature draws the planets that have moons with the
// average temperature of those moons. Moons without a known temperature
// are left out of the average; a planet none of whose moons has one shows
// a placeholder.
func (g *Generator) PlanetsAverageMoonTemperature(ctx context.Context) error {
	g.logger.Info("loading planets and their moons' average temperatures")

	planets, err := g.fetchPlanets(ctx)
	if err != nil {
		return err
	}
	if len(planets) == 0 {
		return g.notice(NoPlanetsFound)
	}

	withMoons := model.PlanetsWithMoons(planets)
	if len(withMoons) == 0 {
		return g.notice(NoPlanetsFoundWithMoons)
	}

	widths := temperatureColumns.Widths()
	g.renderer.DrawHeader(temperatureColumns.Labels(), widths)

	for _, planet := range withMoons {
		temperature := Placeholder
		if avg, ok := planet.AverageMoonTemperature(); ok {
			temperature = formatNumber(avg)
		}
		g.renderer.DrawRow([]string{planet.ID, temperature}, widths)
	}

	return g.closeTable(temperatureColumns)
}
