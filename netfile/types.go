// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Document schema, formats and sentinel errors.

package netfile

import (
	"errors"
)

var (
	// ErrUnknownFormat indicates a path or format name that is neither TOML nor YAML.
	ErrUnknownFormat = errors.New("netfile: unknown document format")

	// ErrInvalidDocument indicates a document that decodes but cannot be
	// turned into a graph (or that carries unknown keys).
	ErrInvalidDocument = errors.New("netfile: invalid network document")
)

// Format is a document serialization.
type Format string

// Supported formats.
const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// Document is the serialized form of a network.
type Document struct {
	Attributes []string `toml:"attributes" yaml:"attributes"`
	Nodes      []Node   `toml:"nodes" yaml:"nodes"`
	Edges      []Edge   `toml:"edges" yaml:"edges"`
}

// Node declares a vertex with optional coordinates.
type Node struct {
	ID  string  `toml:"id" yaml:"id"`
	Lon float64 `toml:"lon,omitempty" yaml:"lon,omitempty"`
	Lat float64 `toml:"lat,omitempty" yaml:"lat,omitempty"`
}

// Edge declares a directed connection. Exactly one of Duration and
// Departures must be set.
type Edge struct {
	From          string             `toml:"from" yaml:"from"`
	To            string             `toml:"to" yaml:"to"`
	Mode          string             `toml:"mode,omitempty" yaml:"mode,omitempty"`
	Duration      *float64           `toml:"duration,omitempty" yaml:"duration,omitempty"`
	Departures    []Departure        `toml:"departures,omitempty" yaml:"departures,omitempty"`
	Attrs         map[string]float64 `toml:"attrs,omitempty" yaml:"attrs,omitempty"`
	Bidirectional bool               `toml:"bidirectional,omitempty" yaml:"bidirectional,omitempty"`
}

// Departure is one scheduled run of a timetabled edge.
type Departure struct {
	At   float64 `toml:"at" yaml:"at"`
	Ride float64 `toml:"ride" yaml:"ride"`
}
