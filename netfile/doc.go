// SPDX-License-Identifier: MIT

// Package netfile loads multimodal networks from TOML or YAML documents,
// optionally zstd-compressed, and builds a *core.Graph from them.
//
// Document layout (TOML shown; YAML uses the same keys):
//
//	attributes = ["fare", "co2"]
//
//	[[nodes]]
//	id  = "Home"
//	lon = 4.83
//	lat = 45.76
//
//	[[edges]]
//	from = "Home"
//	to = "Office"
//	mode = "foot"
//	duration = 900
//	bidirectional = true
//
//	[[edges]]
//	from = "Home"
//	to = "Office"
//	mode = "bus"
//	departures = [{ at = 300, ride = 360 }, { at = 1200, ride = 360 }]
//	attrs = { fare = 2 }
//
// Every edge carries either a constant duration or a list of departures,
// never both. Nodes referenced only by edges are created implicitly.
//
// The format is chosen from the file extension (.toml, .yaml, .yml); a
// trailing .zst selects zstd decompression first.
package netfile
