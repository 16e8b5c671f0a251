package network

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [-122.2700, 37.8000]}, "properties": {"osmid": 1}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [-122.2690, 37.8000]}, "properties": {"osmid": "2"}},
    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[-122.2700, 37.8000], [-122.2695, 37.8001], [-122.2690, 37.8000]]},
     "properties": {"u": 1, "v": 2, "key": 0, "name": ["Broadway", "Telegraph Avenue"], "highway": "primary", "length": 88.5, "oneway": false}},
    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[-122.2690, 37.8000], [-122.2700, 37.8000]]},
     "properties": {"u": 2, "v": 1, "key": 0, "name": [], "highway": ["residential"], "length": "88.5", "oneway": "yes"}},
    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 1]]}, "properties": {"name": "orphan"}},
    {"type": "Feature", "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 0]]]}, "properties": {}}
  ]
}`

func TestGeoJSONSourceLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oakland.geojson")
	require.NoError(t, os.WriteFile(path, []byte(sampleGeoJSON), 0o644))

	n, err := NewGeoJSONSource(path).Load(context.Background(), "Oakland, California, USA")
	require.NoError(t, err)
	assert.Equal(t, "Oakland, California, USA", n.Place)

	require.Len(t, n.Nodes, 2)
	assert.Equal(t, Node{ID: 1, Lat: 37.8, Lon: -122.27}, n.Nodes[0])
	assert.Equal(t, int64(2), n.Nodes[1].ID)

	require.Len(t, n.Edges, 2)
	e := n.Edges[0]
	assert.Equal(t, int64(1), e.U)
	assert.Equal(t, int64(2), e.V)
	assert.Equal(t, 0, e.Key)
	assert.Equal(t, "Broadway", e.Name)
	assert.Equal(t, "primary", e.Highway)
	assert.Equal(t, 88.5, e.Length)
	assert.False(t, e.Oneway)
	assert.Len(t, e.Line, 3)
	assert.Equal(t, orb.Point{-122.2695, 37.8001}, e.Line[1])

	back := n.Edges[1]
	assert.Equal(t, "", back.Name)
	assert.Equal(t, "residential", back.Highway)
	assert.Equal(t, 88.5, back.Length)
	assert.True(t, back.Oneway)
}

func TestGeoJSONSourceErrors(t *testing.T) {
	_, err := NewGeoJSONSource(filepath.Join(t.TempDir(), "missing.geojson")).Load(context.Background(), "x")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.geojson")
	require.NoError(t, os.WriteFile(path, []byte(`{"type": "FeatureCollection", "features": [`), 0o644))
	_, err = NewGeoJSONSource(path).Load(context.Background(), "x")
	assert.Error(t, err)

	path = filepath.Join(t.TempDir(), "noid.geojson")
	require.NoError(t, os.WriteFile(path, []byte(`{"type": "FeatureCollection", "features": [
		{"type": "Feature", "geometry": {"type": "Point", "coordinates": [0, 0]}, "properties": {}}]}`), 0o644))
	_, err = NewGeoJSONSource(path).Load(context.Background(), "x")
	assert.Error(t, err)
}

func TestFirstOf(t *testing.T) {
	assert.Equal(t, "a", firstOf([]any{"a", "b"}))
	assert.Nil(t, firstOf([]any{}))
	assert.Equal(t, 3.0, firstOf(3.0))
	assert.Nil(t, firstOf(nil))
}
