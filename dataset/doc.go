// Package dataset loads routing networks from YAML city/road records
// and builds core graphs from them.
//
// A dataset file has two sections:
//
//	cities:
//	  - id: Lagos
//	    state: Lagos
//	    prevalence: 0.25
//	    population: 14862000
//	    lat: 6.5244
//	    lon: 3.3792
//	roads:
//	  - from: Lagos
//	    to: Benin City
//	    distance_km: 290
//
// prevalence (the malaria prevalence rate, in [0, 1]) becomes the node
// priority; distance_km becomes the edge distance. Construction is
// all-or-nothing: the first invalid record aborts the build with the
// underlying core sentinel error wrapped with record context, and no
// partially built graph is returned.
//
// Default returns the embedded sample dataset of Nigerian cities with
// prevalence statistics and road distances, distilled from field survey
// data, which is what the CLI and server use when no dataset file is
// supplied.
package dataset
