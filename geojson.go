package main

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// PathGeoJSON turns a path into a feature collection: the route as a
// LineString followed by its start and end as Points. Coordinates are node
// locations (lon/lat) where the graph has them.
func (g *RoadGraph) PathGeoJSON(path Path) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if len(path.Nodes) == 0 {
		return fc
	}

	line := make(orb.LineString, 0, len(path.Nodes))
	for _, node := range path.Nodes {
		line = append(line, g.Location(node.ID))
	}

	var route *geojson.Feature
	if len(line) > 1 {
		route = geojson.NewFeature(line)
	} else {
		route = geojson.NewFeature(line[0])
	}
	route.Properties["kind"] = "route"
	route.Properties["distanceMeters"] = path.Length
	route.Properties["cost"] = path.Cost
	route.Properties["nodes"] = len(path.Nodes)
	fc.Append(route)

	start := geojson.NewFeature(line[0])
	start.Properties["kind"] = "start"
	start.Properties["node"] = int(path.Nodes[0].ID)
	fc.Append(start)

	end := geojson.NewFeature(line[len(line)-1])
	end.Properties["kind"] = "end"
	end.Properties["node"] = int(path.Nodes[len(path.Nodes)-1].ID)
	fc.Append(end)

	return fc
}
