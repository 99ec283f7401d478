// Package database provides SQLite-based storage for solarreport catalogs.
//
// The CatalogDB stores:
//   - Planets in the order they were imported
//   - Moons, attached to a planet or unattached, in import order
//   - An import history recording where each catalog came from
//
// SQLite is accessed through modernc.org/sqlite, which is CGO-free and keeps
// the whole store in a single file under the XDG data directory.
package database
