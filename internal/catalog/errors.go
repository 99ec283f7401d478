package catalog

import "errors"

var (
	// ErrCatalogNotFound is returned when a catalog file does not exist.
	ErrCatalogNotFound = errors.New("catalog file not found")

	// ErrMissingID is returned when a planet or moon has an empty id.
	ErrMissingID = errors.New("missing id")

	// ErrDuplicatePlanet is returned when two planets share the same id.
	ErrDuplicatePlanet = errors.New("duplicate planet id")

	// ErrNoCatalogFiles is returned when LoadAll is called without paths.
	ErrNoCatalogFiles = errors.New("no catalog files given")
)
