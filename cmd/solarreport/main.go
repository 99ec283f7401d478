// Package main provides the entry point for the solarreport CLI.
//
// solarreport renders fixed-width reports about planets and their moons
// from catalog files or from a local SQLite catalog store.
//
// Usage:
//
//	solarreport import solar.yaml
//	solarreport report
//	solarreport report gravity --catalog solar.yaml
//
// See --help for all available options.
package main

// main is the entry point for solarreport.
func main() {
	Execute()
}
