package main

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Planner runs route searches on one loaded graph. It is safe for concurrent
// use: every search gets its own PathSearcher and the graph is only read.
type Planner struct {
	graph  *RoadGraph
	search SearchConfig
	logger *zap.Logger
	tracer trace.Tracer
}

func NewPlanner(graph *RoadGraph, search SearchConfig, logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{
		graph:  graph,
		search: search,
		logger: logger,
		tracer: otel.Tracer("route-planner"),
	}
}

// Plan searches a route between two request coordinates
func (p *Planner) Plan(ctx context.Context, start, end Point) (Path, SearchStats, error) {
	ctx, span := p.tracer.Start(ctx, "route.search")
	defer span.End()

	began := time.Now()
	startX, startY := p.search.Coordinates.Normalize(start)
	endX, endY := p.search.Coordinates.Normalize(end)

	searcher, err := NewPathSearcher(p.graph, startX, startY, endX, endY,
		WithMaxExpansions(p.search.MaxExpansions),
		WithPathSink(p.graph),
		WithLogger(p.logger),
	)
	if err != nil {
		observeSearch(err, time.Since(began), SearchStats{})
		span.SetStatus(codes.Error, err.Error())
		return Path{}, SearchStats{}, err
	}
	span.SetAttributes(
		attribute.Int("route.start_node", int(searcher.StartNode())),
		attribute.Int("route.end_node", int(searcher.EndNode())),
	)

	path, err := searcher.Run(ctx)
	stats := searcher.Stats()
	observeSearch(err, time.Since(began), stats)
	span.SetAttributes(
		attribute.String("route.result", searchResult(err)),
		attribute.Int("route.expanded", stats.Expanded),
	)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Path{}, stats, err
	}
	span.SetAttributes(attribute.Float64("route.distance_meters", path.Length))
	return path, stats, nil
}
