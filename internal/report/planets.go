package report

import (
	"context"
	"strconv"
)

// PlanetsAndMoons draws, for each planet, a numbered planet row followed by
// a nested table listing its moons.
//
// Example output for one planet:
//
//	--------------------+--------------------+------------------------------+--------------------
//	Planet's Number     |Planet's Id         |Planet's Semi-Major Axis      |Total Moons
//	3                   |Terre               |149598023                     |1
//	--------------------+--------------------+------------------------------+--------------------
//	Moon's Number       |Moon's Id
//	1                   |La Lune
//	--------------------+------------------------------------------------------------------------
func (g *Generator) PlanetsAndMoons(ctx context.Context) error {
	planets, err := g.fetchPlanets(ctx)
	if err != nil {
		return err
	}
	if len(planets) == 0 {
		return g.notice(NoPlanetsFound)
	}

	planetWidths := planetColumns.Widths()
	moonWidths := nestedMoonColumns.Widths()

	for i, planet := range planets {
		g.renderer.DrawRule(planetWidths)
		g.renderer.DrawRow(planetColumns.Labels(), planetWidths)
		g.renderer.DrawRow([]string{
			strconv.Itoa(i + 1),
			g.title(planet.ID),
			formatNumber(planet.SemiMajorAxis),
			strconv.Itoa(len(planet.Moons)),
		}, planetWidths)

		g.renderer.DrawRule(planetWidths)
		g.renderer.DrawRow(nestedMoonColumns.Labels(), moonWidths)
		for j, moon := range planet.Moons {
			g.renderer.DrawRow([]string{
				strconv.Itoa(j + 1),
				g.title(moon.ID),
			}, moonWidths)
		}

		if err := g.closeTable(nestedMoonColumns); err != nil {
			return err
		}
	}

	return nil
}
