// Package model defines the astronomical data structures shared by the
// report generators and the catalog providers.
//
// This package contains the following main types:
//   - Planet: A planet with its semi-major axis and ordered moons
//   - Moon: A moon with its mass, surface gravity and optional temperature
//   - Catalog: A set of planets plus moons not attached to any planet
//
// Values are read-only views once handed to the report package. Providers
// own and construct them; report generators never mutate them.
package model
