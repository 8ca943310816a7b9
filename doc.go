// SPDX-License-Identifier: MIT

// Package mumoro finds Pareto-optimal itineraries in multimodal,
// time-dependent transport networks.
//
// What is inside?
//
//	A thread-safe network model and a multi-objective label-setting search:
//		• Network primitives: stops, edges with transport modes and attributes
//		• Travel functions: constant walks and rides, scheduled timetables
//		• Search: generalized Martins algorithm, strict or relaxed dominance
//		• Batch: concurrent searches over one shared network
//		• Documents: TOML / YAML networks, optionally zstd-compressed
//
// Packages:
//
//	core/: Graph, Vertex, Edge, modes, TravelFunc and Timetable
//	martins/: Search, SearchMany, dominance predicates, objectives, Result
//	bfs/: schedule-free reachability, stops and leg counts
//	netfile/: network documents → *core.Graph
//	cmd/mumoro: command-line front end (search, info)
//
// Quick ASCII example:
//
//	    A──(10, 5)──B──(10, 5)──D
//	    └──(20, 1)──C──( 5, 1)──┘
//
//	(time, fare) per edge: A→B→D arrives at 20 for 10, A→C→D at 25 for 2.
//	Neither dominates the other, so both are returned.
//
//	go get github.com/RonaldPonguillo/mumoro
package mumoro
