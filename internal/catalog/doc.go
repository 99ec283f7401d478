// Package catalog loads planet and moon catalogs from YAML or JSON files
// and serves them as in-memory providers.
//
// A catalog file looks like this:
//
//	planets:
//	  - id: terre
//	    semiMajorAxis: 149598023
//	    moons:
//	      - id: la lune
//	        massExponent: 22
//	        massValue: 7.346
//	        gravity: 1.62
//	        avgTemp: -20
//	moons:
//	  - id: dysnomia
//	    massExponent: 20
//	    massValue: 8.2
//
// The top-level moons list holds moons that do not belong to any listed
// planet. JSON files are accepted as well since JSON is a subset of YAML.
// Unknown keys are rejected so that typos do not silently drop data.
package catalog
