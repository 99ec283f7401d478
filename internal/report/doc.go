// Package report generates the planet and moon reports.
//
// A Generator fetches data from a PlanetProvider and a MoonProvider,
// filters and aggregates it, and drives a table.Renderer to draw exactly
// one table per report:
//   - PlanetsAndMoons: one numbered planet row per planet, each followed by
//     a nested table of its moons
//   - MoonsAndMass: every moon with its mass exponent and mass value
//   - PlanetsAverageMoonGravity: every planet with its average moon gravity
//   - PlanetsAverageMoonTemperature: planets with moons and the average
//     temperature of those moons
//
// An empty provider result is not an error: the generator writes a notice
// line and returns nil. Provider errors are returned wrapped and are never
// retried or logged here.
//
// Column widths are fixed per report and independent of the data, so the
// same input always produces byte-identical output.
package report
