// Package geo holds the planar geometry used by the router: projection of
// WGS84 coordinates to Web Mercator and R-tree indexes over street lines and
// nodes.
package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// CRS identifies the coordinate reference system of stored geometry by EPSG code.
type CRS int

const (
	CRSUndefined CRS = 0
	WGS84        CRS = 4326
	WebMercator  CRS = 3857
)

var ErrUnsupportedCRS = errors.New("unsupported coordinate reference system")

func (c CRS) String() string {
	if c == CRSUndefined {
		return "undefined"
	}
	return fmt.Sprintf("EPSG:%d", int(c))
}

func (c CRS) Defined() bool {
	return c != CRSUndefined
}

// Projected reports whether c has planar units. Incident radii and crime
// buffers are only meaningful in a projected system.
func (c CRS) Projected() bool {
	return c == WebMercator
}

// ValidLatLon reports whether lat/lon are finite and in range.
func ValidLatLon(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ToCRS projects a WGS84 (lon, lat) point into crs.
func ToCRS(p orb.Point, crs CRS) (orb.Point, error) {
	switch crs {
	case WGS84:
		return p, nil
	case WebMercator:
		return project.WGS84.ToMercator(p), nil
	default:
		return orb.Point{}, fmt.Errorf("%w: %v", ErrUnsupportedCRS, crs)
	}
}

// LineToCRS projects a WGS84 line string into crs, returning a new line.
func LineToCRS(ls orb.LineString, crs CRS) (orb.LineString, error) {
	switch crs {
	case WGS84:
		return ls.Clone(), nil
	case WebMercator:
		return project.LineString(ls.Clone(), project.WGS84.ToMercator), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedCRS, crs)
	}
}
