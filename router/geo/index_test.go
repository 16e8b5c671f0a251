package geo_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safestride/routing/router/geo"
)

func TestLineIndexWithin(t *testing.T) {
	ix := geo.NewLineIndex()
	assert.Nil(t, ix.Within(orb.Point{0, 0}, 10))

	require.True(t, ix.Insert("horizontal", orb.LineString{{0, 0}, {100, 0}}))
	require.True(t, ix.Insert("vertical", orb.LineString{{200, -50}, {200, 50}}))
	require.True(t, ix.Insert("far", orb.LineString{{1000, 1000}, {1100, 1000}}))
	assert.False(t, ix.Insert("empty", orb.LineString{}))
	assert.Equal(t, 3, ix.Len())

	hits := ix.Within(orb.Point{50, 20}, 25)
	require.Len(t, hits, 1)
	assert.Equal(t, "horizontal", hits[0].ID)
	assert.InDelta(t, 20, hits[0].Distance, 1e-9)

	// the buffer boundary is inclusive
	hits = ix.Within(orb.Point{50, 25}, 25)
	require.Len(t, hits, 1)

	// a point beyond the segment end is measured to the end vertex
	hits = ix.Within(orb.Point{120, 0}, 25)
	require.Len(t, hits, 1)
	assert.InDelta(t, 20, hits[0].Distance, 1e-9)

	// a point between two lines matches both, closest first
	hits = ix.Within(orb.Point{140, 10}, 65)
	require.Len(t, hits, 2)
	assert.Equal(t, "horizontal", hits[0].ID)
	assert.Equal(t, "vertical", hits[1].ID)

	assert.Empty(t, ix.Within(orb.Point{500, 500}, 25))
}

func TestLineIndexDegenerateLine(t *testing.T) {
	ix := geo.NewLineIndex()
	ix.Insert("dot", orb.LineString{{10, 10}})
	ix.Insert("flat", orb.LineString{{0, 0}, {0, 0}})

	hits := ix.Within(orb.Point{10, 13}, 5)
	require.Len(t, hits, 1)
	assert.Equal(t, "dot", hits[0].ID)
	assert.InDelta(t, 3, hits[0].Distance, 1e-9)

	hits = ix.Within(orb.Point{0, 0}, 1)
	require.Len(t, hits, 1)
	assert.Equal(t, "flat", hits[0].ID)
}

func TestPointIndexNearest(t *testing.T) {
	ix := geo.NewPointIndex()
	_, ok := ix.Nearest(orb.Point{0, 0})
	assert.False(t, ok)

	ix.Insert(7, orb.Point{0, 0})
	ix.Insert(8, orb.Point{10, 0})
	ix.Insert(9, orb.Point{0, 10})
	assert.Equal(t, 3, ix.Len())

	id, ok := ix.Nearest(orb.Point{8, 1})
	require.True(t, ok)
	assert.Equal(t, 8, id)
	id, _ = ix.Nearest(orb.Point{-5, -5})
	assert.Equal(t, 7, id)
}

func TestProjection(t *testing.T) {
	p, err := geo.ToCRS(orb.Point{0, 0}, geo.WebMercator)
	require.NoError(t, err)
	assert.InDelta(t, 0, p[0], 1e-6)
	assert.InDelta(t, 0, p[1], 1e-6)

	// one degree of longitude at the equator is ~111 km in Web Mercator
	p, _ = geo.ToCRS(orb.Point{1, 0}, geo.WebMercator)
	assert.InDelta(t, 111319.49, p[0], 0.1)

	p, err = geo.ToCRS(orb.Point{-122.27, 37.80}, geo.WGS84)
	require.NoError(t, err)
	assert.Equal(t, orb.Point{-122.27, 37.80}, p)

	_, err = geo.ToCRS(orb.Point{0, 0}, geo.CRSUndefined)
	assert.ErrorIs(t, err, geo.ErrUnsupportedCRS)

	line := orb.LineString{{0, 0}, {1, 0}}
	projected, err := geo.LineToCRS(line, geo.WebMercator)
	require.NoError(t, err)
	assert.InDelta(t, 111319.49, projected[1][0], 0.1)
	// input is left untouched
	assert.Equal(t, orb.Point{1, 0}, line[1])

	assert.Equal(t, "EPSG:3857", geo.WebMercator.String())
	assert.Equal(t, "undefined", geo.CRSUndefined.String())
	assert.False(t, geo.CRSUndefined.Defined())
	assert.True(t, geo.WebMercator.Projected())
	assert.False(t, geo.WGS84.Projected())
	assert.False(t, geo.CRSUndefined.Projected())
}

func TestValidLatLon(t *testing.T) {
	assert.True(t, geo.ValidLatLon(37.8, -122.27))
	assert.False(t, geo.ValidLatLon(91, 0))
	assert.False(t, geo.ValidLatLon(0, 181))
	assert.False(t, geo.ValidLatLon(math.NaN(), 0))
	assert.False(t, geo.ValidLatLon(0, math.Inf(1)))
}
