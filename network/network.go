// Package network loads the street network consumed by the router.
package network

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "network")

type Node struct {
	ID  int64
	Lat float64
	Lon float64
}

// Edge is a directed street segment. Line is in (lon, lat) order and may be
// empty, in which case the segment is the straight line between U and V.
type Edge struct {
	U, V    int64
	Key     int
	Line    orb.LineString
	Name    string
	Highway string
	Length  float64
	Oneway  bool
}

type Network struct {
	Place string
	Nodes []Node
	Edges []Edge
}

// Source provides the street network of a place.
type Source interface {
	Load(ctx context.Context, place string) (*Network, error)
}

// GeoJSONSource reads an osmnx graph_to_gdfs export: Point features are
// nodes (property "osmid"), LineString features are edges (properties
// "u", "v", "key" and OSM tags).
type GeoJSONSource struct {
	Path string
}

func NewGeoJSONSource(path string) *GeoJSONSource {
	return &GeoJSONSource{Path: path}
}

func (s *GeoJSONSource) Load(ctx context.Context, place string) (*Network, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, eris.Wrapf(err, "network: read %s", s.Path)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, eris.Wrapf(err, "network: parse %s", s.Path)
	}
	n, err := FromFeatureCollection(fc)
	if err != nil {
		return nil, err
	}
	n.Place = place
	log.Infof("loaded network of %q from %s: %d nodes, %d edges", place, s.Path, len(n.Nodes), len(n.Edges))
	return n, nil
}

// FromFeatureCollection converts node and edge features. Features of other
// geometry types and edges without endpoints are skipped.
func FromFeatureCollection(fc *geojson.FeatureCollection) (*Network, error) {
	n := &Network{
		Nodes: make([]Node, 0),
		Edges: make([]Edge, 0),
	}
	skipped := 0
	for i, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.Point:
			id, ok := parseID(firstOf(f.Properties["osmid"]))
			if !ok {
				return nil, eris.Errorf("network: node feature %d has no osmid", i)
			}
			n.Nodes = append(n.Nodes, Node{ID: id, Lon: g[0], Lat: g[1]})
		case orb.LineString:
			u, uOk := parseID(firstOf(f.Properties["u"]))
			v, vOk := parseID(firstOf(f.Properties["v"]))
			if !uOk || !vOk {
				skipped++
				continue
			}
			key, _ := parseID(firstOf(f.Properties["key"]))
			n.Edges = append(n.Edges, Edge{
				U:       u,
				V:       v,
				Key:     int(key),
				Line:    g,
				Name:    asString(firstOf(f.Properties["name"])),
				Highway: asString(firstOf(f.Properties["highway"])),
				Length:  asFloat(firstOf(f.Properties["length"])),
				Oneway:  asBool(firstOf(f.Properties["oneway"])),
			})
		default:
			skipped++
		}
	}
	if skipped > 0 {
		log.Warnf("skipped %d features that are neither nodes nor edges", skipped)
	}
	return n, nil
}

// firstOf normalizes multi-valued OSM tags: the first element of a list, nil
// for an empty list, the value itself otherwise.
func firstOf(v any) any {
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return nil
		}
		return list[0]
	}
	return v
}

func parseID(v any) (int64, bool) {
	switch x := v.(type) {
	case float64:
		return int64(x), true
	case int64:
		return x, true
	case int:
		return int64(x), true
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		return id, err == nil
	default:
		return 0, false
	}
}

func asString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

func asFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		b, _ := strconv.ParseBool(x)
		return b || x == "yes"
	default:
		return false
	}
}
