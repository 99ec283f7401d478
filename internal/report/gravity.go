package report

import "context"

// PlanetsAverageMoonGravity draws every planet with the average surface
// gravity of its moons, or a placeholder for planets without moons.
//
// An empty planet list is reported with NoMoonsFound, not NoPlanetsFound.
func (g *Generator) PlanetsAverageMoonGravity(ctx context.Context) error {
	planets, err := g.fetchPlanets(ctx)
	if err != nil {
		return err
	}
	if len(planets) == 0 {
		return g.notice(NoMoonsFound)
	}

	widths := gravityColumns.Widths()
	g.renderer.DrawHeader(gravityColumns.Labels(), widths)

	for _, planet := range planets {
		gravity := Placeholder
		if planet.HasMoons() {
			gravity = formatNumber(planet.AverageMoonGravity())
		}
		g.renderer.DrawRow([]string{planet.ID, gravity}, widths)
	}

	return g.closeTable(gravityColumns)
}
