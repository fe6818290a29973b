package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	configFile := flag.String("config", "config.yaml", "path to the config file")
	from := flag.String("from", "", "start coordinate as x,y; runs a single search and exits")
	to := flag.String("to", "", "end coordinate as x,y")
	flag.Parse()

	config, err := ReadConfig(*configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		config = DefaultConfig()
	}

	logger, err := NewLogger(config.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	graph, err := LoadGraph(config.Graph.File, logger)
	if err != nil {
		logger.Fatal("failed to load graph", zap.String("file", config.Graph.File), zap.Error(err))
	}
	planner := NewPlanner(graph, config.Search, logger)

	if *from != "" || *to != "" {
		if err := runOnce(planner, *from, *to); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	server := NewServer(planner, logger)
	logger.Info("server starting",
		zap.String("addr", config.Server.Addr),
		zap.String("coordinates", string(config.Search.Coordinates)),
		zap.Int("maxExpansions", config.Search.MaxExpansions),
	)
	if err := http.ListenAndServe(config.Server.Addr, server.Handler()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// runOnce searches a single route and prints it
func runOnce(planner *Planner, from, to string) error {
	start, err := parsePoint(from)
	if err != nil {
		return errors.Wrap(err, "-from")
	}
	end, err := parsePoint(to)
	if err != nil {
		return errors.Wrap(err, "-to")
	}

	path, stats, err := planner.Plan(context.Background(), start, end)
	if err != nil {
		return err
	}

	for i, node := range path.Nodes {
		fmt.Printf("%4d  node %-8d (%.6f, %.6f)\n", i, node.ID, node.Point.X(), node.Point.Y())
	}
	fmt.Printf("distance: %.2f m, hops: %.0f, expanded: %d\n", path.Length, path.Cost, stats.Expanded)
	return nil
}

// parsePoint reads a coordinate written as "x,y"
func parsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, errors.Errorf("coordinate %q is not x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "coordinate %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "coordinate %q", s)
	}
	return Point{X: x, Y: y}, nil
}
