// Package config provides configuration structures and utilities for
// solarreport. It defines where catalogs come from, which reports run and
// how they are rendered, and loads the optional .solarreport file.
package config
