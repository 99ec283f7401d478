package report

import (
	"context"
	"strconv"
)

// MoonsAndMass draws one numbered row per moon with its mass exponent and
// mass value.
func (g *Generator) MoonsAndMass(ctx context.Context) error {
	moons, err := g.fetchMoons(ctx)
	if err != nil {
		return err
	}
	if len(moons) == 0 {
		return g.notice(NoMoonsFound)
	}

	widths := moonMassColumns.Widths()
	g.renderer.DrawHeader(moonMassColumns.Labels(), widths)

	for i, moon := range moons {
		g.renderer.DrawRow([]string{
			strconv.Itoa(i + 1),
			g.title(moon.ID),
			strconv.Itoa(moon.MassExponent),
			formatNumber(moon.MassValue),
		}, widths)
	}

	return g.closeTable(moonMassColumns)
}
