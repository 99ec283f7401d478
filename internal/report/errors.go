package report

import "errors"

var (
	// ErrUnknownReport is returned by ParseKind for an unrecognised report name.
	ErrUnknownReport = errors.New("unknown report: must be one of planets, moons, gravity, temperature")

	// ErrNoPlanetProvider is returned when a planet report runs without a PlanetProvider.
	ErrNoPlanetProvider = errors.New("no planet provider configured")

	// ErrNoMoonProvider is returned when a moon report runs without a MoonProvider.
	ErrNoMoonProvider = errors.New("no moon provider configured")
)
