package report

import "github.com/nao1215/solarreport/internal/table"

// Column labels.
const (
	PlanetNumberLabel             = "Planet's Number"
	PlanetIDLabel                 = "Planet's Id"
	PlanetSemiMajorAxisLabel      = "Planet's Semi-Major Axis"
	TotalMoonsLabel               = "Total Moons"
	MoonNumberLabel               = "Moon's Number"
	MoonIDLabel                   = "Moon's Id"
	MoonMassExponentLabel         = "Moon's Mass Exponent"
	MoonMassValueLabel            = "Moon's Mass Value"
	PlanetAverageMoonGravityLabel = "Planet's Average Moon Gravity"
	MoonAverageTemperatureLabel   = "Moon's Average Temperature"
)

// Notices written instead of a table when there is nothing to show.
const (
	NoPlanetsFound          = "no planets found"
	NoMoonsFound            = "no moons found"
	NoPlanetsFoundWithMoons = "no planets found with moons"
)

// Placeholder is shown in a value column when the value is undefined.
const Placeholder = "-"

// reportSpacing is the number of blank lines after each table.
const reportSpacing = 2

var (
	planetColumns = table.Columns{
		{Width: 20, Label: PlanetNumberLabel},
		{Width: 20, Label: PlanetIDLabel},
		{Width: 30, Label: PlanetSemiMajorAxisLabel},
		{Width: 20, Label: TotalMoonsLabel},
	}

	// nestedMoonColumns is drawn under a planet row. The second column
	// spans the planet table's last three columns plus the two separators
	// between them, so both tables share the same right border.
	nestedMoonColumns = table.Columns{
		{Width: 20, Label: MoonNumberLabel},
		{Width: 70 + 2, Label: MoonIDLabel},
	}

	moonMassColumns = table.Columns{
		{Width: 20, Label: MoonNumberLabel},
		{Width: 20, Label: MoonIDLabel},
		{Width: 30, Label: MoonMassExponentLabel},
		{Width: 20, Label: MoonMassValueLabel},
	}

	gravityColumns = table.Columns{
		{Width: 20, Label: PlanetIDLabel},
		{Width: 30, Label: PlanetAverageMoonGravityLabel},
	}

	temperatureColumns = table.Columns{
		{Width: 20, Label: PlanetIDLabel},
		{Width: 30, Label: MoonAverageTemperatureLabel},
	}
)
