// SPDX-License-Identifier: MIT
package netfile_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RonaldPonguillo/mumoro/core"
	"github.com/RonaldPonguillo/mumoro/martins"
	"github.com/RonaldPonguillo/mumoro/netfile"
)

// checkCommute asserts the shape of the testdata commute network and that a
// search over it yields the bus and the walking itinerary.
func checkCommute(t *testing.T, g *core.Graph) {
	t.Helper()
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 5, g.Size())
	assert.Equal(t, []string{"fare"}, g.Attributes())

	i, ok := g.Index("Home")
	require.True(t, ok)
	assert.Equal(t, 0, i, "nodes keep document order")
	v, err := g.VertexAt(i)
	require.NoError(t, err)
	assert.InDelta(t, 4.832, v.Lon, 1e-9)

	edges, err := g.Neighbors("Stop")
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, core.Foot, edges[0].Mode, "reverse of Home→Stop")
	assert.Equal(t, core.Bus, edges[1].Mode)
	assert.Equal(t, 2.0, edges[1].Attr(0))

	res, err := martins.Search(g,
		martins.Source("Home"),
		martins.Target("Office"),
		martins.WithObjectives(martins.Attribute(0)),
	)
	require.NoError(t, err)
	require.Len(t, res.Paths, 2)
	assert.Equal(t, []string{"Home", "Stop", "Office"}, res.Paths[0].Nodes)
	assert.Equal(t, []float64{1200, 2}, res.Paths[0].Cost)
	assert.Equal(t, []string{"Home", "Office"}, res.Paths[1].Nodes)
	assert.Equal(t, []float64{2400, 0}, res.Paths[1].Cost)
}

func TestLoad_TOML(t *testing.T) {
	g, err := netfile.Load(filepath.Join("testdata", "commute.toml"))
	require.NoError(t, err)
	checkCommute(t, g)
}

func TestLoad_YAML(t *testing.T) {
	g, err := netfile.Load(filepath.Join("testdata", "commute.yaml"))
	require.NoError(t, err)
	checkCommute(t, g)
}

func TestLoad_FormatsAgree(t *testing.T) {
	fromTOML, err := netfile.Read(filepath.Join("testdata", "commute.toml"))
	require.NoError(t, err)
	fromYAML, err := netfile.Read(filepath.Join("testdata", "commute.yaml"))
	require.NoError(t, err)
	assert.Equal(t, fromTOML, fromYAML)
}

func TestLoad_Zstd(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "commute.yaml"))
	require.NoError(t, err)

	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "commute.yaml.zst")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	g, err := netfile.Load(path)
	require.NoError(t, err)
	checkCommute(t, g)
}

func TestFormatOf(t *testing.T) {
	cases := []struct {
		path       string
		want       netfile.Format
		compressed bool
		err        error
	}{
		{"net.toml", netfile.TOML, false, nil},
		{"dir/NET.YML", netfile.YAML, false, nil},
		{"net.yaml.zst", netfile.YAML, true, nil},
		{"net.toml.zst", netfile.TOML, true, nil},
		{"net.json", "", false, netfile.ErrUnknownFormat},
		{"net.zst", "", true, netfile.ErrUnknownFormat},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			f, compressed, err := netfile.FormatOf(tc.path)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, f)
			assert.Equal(t, tc.compressed, compressed)
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	d := 90.0
	doc := &netfile.Document{
		Attributes: []string{"fare", "co2"},
		Nodes:      []netfile.Node{{ID: "A", Lon: 1.5, Lat: 2.5}, {ID: "B"}},
		Edges: []netfile.Edge{
			{From: "A", To: "B", Mode: "bike", Duration: &d, Attrs: map[string]float64{"co2": 0.5}},
			{From: "B", To: "A", Mode: "tram", Departures: []netfile.Departure{{At: 10, Ride: 5}}, Attrs: map[string]float64{"fare": 1}},
		},
	}

	for _, f := range []netfile.Format{netfile.TOML, netfile.YAML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, doc.Encode(&buf, f))
			got, err := netfile.Decode(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, doc, got)
		})
	}

	assert.ErrorIs(t, doc.Encode(&bytes.Buffer{}, "json"), netfile.ErrUnknownFormat)
	_, err := netfile.Decode(strings.NewReader(""), "json")
	assert.ErrorIs(t, err, netfile.ErrUnknownFormat)
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	_, err := netfile.Decode(strings.NewReader("[[edges]]\nfrom = \"A\"\nto = \"B\"\nspeed = 3\n"), netfile.TOML)
	assert.ErrorIs(t, err, netfile.ErrInvalidDocument)

	_, err = netfile.Decode(strings.NewReader("edges:\n  - from: A\n    to: B\n    speed: 3\n"), netfile.YAML)
	assert.ErrorIs(t, err, netfile.ErrInvalidDocument)

	_, err = netfile.Decode(strings.NewReader("attributes = [\n"), netfile.TOML)
	assert.ErrorIs(t, err, netfile.ErrInvalidDocument)
}

func TestDecode_EmptyYAML(t *testing.T) {
	doc, err := netfile.Decode(strings.NewReader(""), netfile.YAML)
	require.NoError(t, err)
	g, err := doc.Build()
	require.NoError(t, err)
	assert.Zero(t, g.Order())
}

func TestBuild_Errors(t *testing.T) {
	d := 10.0
	neg := -1.0
	nan := math.NaN()
	cases := []struct {
		name  string
		doc   netfile.Document
		cause error
	}{
		{"empty node id", netfile.Document{Nodes: []netfile.Node{{ID: ""}}}, core.ErrEmptyVertexID},
		{"no travel", netfile.Document{Edges: []netfile.Edge{{From: "A", To: "B"}}}, nil},
		{"both travel kinds", netfile.Document{Edges: []netfile.Edge{{From: "A", To: "B", Duration: &d, Departures: []netfile.Departure{{At: 1, Ride: 1}}}}}, nil},
		{"negative duration", netfile.Document{Edges: []netfile.Edge{{From: "A", To: "B", Duration: &neg}}}, nil},
		{"NaN duration", netfile.Document{Edges: []netfile.Edge{{From: "A", To: "B", Duration: &nan}}}, nil},
		{"bad timetable", netfile.Document{Edges: []netfile.Edge{{From: "A", To: "B", Departures: []netfile.Departure{{At: 1, Ride: -5}}}}}, core.ErrBadTimetable},
		{"unknown attribute", netfile.Document{Edges: []netfile.Edge{{From: "A", To: "B", Duration: &d, Attrs: map[string]float64{"fare": 1}}}}, core.ErrAttributeNotFound},
		{"self loop", netfile.Document{Edges: []netfile.Edge{{From: "A", To: "A", Duration: &d}}}, core.ErrLoopNotAllowed},
		{"NaN attribute", netfile.Document{Attributes: []string{"fare"}, Edges: []netfile.Edge{{From: "A", To: "B", Duration: &d, Attrs: map[string]float64{"fare": math.NaN()}}}}, core.ErrNonFiniteAttribute},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.doc.Build()
			assert.Nil(t, g)
			assert.ErrorIs(t, err, netfile.ErrInvalidDocument)
			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := netfile.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = netfile.Load("network.csv")
	assert.ErrorIs(t, err, netfile.ErrUnknownFormat)
}
