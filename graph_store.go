package main

import (
	"encoding/json"
	"os"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// graphFile is the on-disk form of a prebuilt RoadGraph
type graphFile struct {
	Nodes       []RoadNode `json:"nodes"`
	BoundingBox struct {
		MinLat float64 `json:"minLat"`
		MaxLat float64 `json:"maxLat"`
		MinLon float64 `json:"minLon"`
		MaxLon float64 `json:"maxLon"`
	} `json:"boundingBox"`
	MetricScale float64 `json:"metricScale,omitempty"`
}

// SaveGraph serializes and saves the graph to a JSON file
func SaveGraph(g *RoadGraph, filename string, logger *zap.Logger) error {
	var file graphFile
	file.Nodes = g.Nodes
	file.BoundingBox.MinLat = g.Bounds.Min.Lat()
	file.BoundingBox.MaxLat = g.Bounds.Max.Lat()
	file.BoundingBox.MinLon = g.Bounds.Min.Lon()
	file.BoundingBox.MaxLon = g.Bounds.Max.Lon()
	file.MetricScale = g.MetricScale()

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal graph")
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write file")
	}

	logger.Info("graph saved", zap.String("file", filename), zap.Int("bytes", len(data)))
	return nil
}

// LoadGraph reads a graph written by SaveGraph. When no node carries a
// normalized position, positions are derived from the node locations.
func LoadGraph(filename string, logger *zap.Logger) (*RoadGraph, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read file")
	}

	var file graphFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal graph")
	}

	bounds := orb.Bound{
		Min: orb.Point{file.BoundingBox.MinLon, file.BoundingBox.MinLat},
		Max: orb.Point{file.BoundingBox.MaxLon, file.BoundingBox.MaxLat},
	}
	if !hasPositions(file.Nodes) {
		for i := range file.Nodes {
			file.Nodes[i].Point = NormalizeLocation(bounds, file.Nodes[i].Location)
		}
	}

	g, err := NewRoadGraph(file.Nodes, bounds, file.MetricScale)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid graph in %s", filename)
	}

	logger.Info("graph loaded",
		zap.String("file", filename),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Float64("metricScale", g.MetricScale()),
	)
	return g, nil
}

func hasPositions(nodes []RoadNode) bool {
	for _, node := range nodes {
		if node.Point != (orb.Point{}) {
			return true
		}
	}
	return len(nodes) <= 1
}
