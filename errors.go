package main

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnresolvableCoordinate is returned when a start or goal coordinate
	// cannot be snapped to a graph node.
	ErrUnresolvableCoordinate = errors.New("unresolvable coordinate")

	// ErrNoPathFound is returned when the frontier runs dry before the goal is reached.
	ErrNoPathFound = errors.New("no path found")

	// ErrSearchAborted is returned when the expansion cap is hit or the context is done.
	ErrSearchAborted = errors.New("search aborted")

	// ErrSearcherReused is returned by Run on a searcher that already ran.
	// Scratch state is per run, so a new searcher is needed for every search.
	ErrSearcherReused = errors.New("path searcher already ran")

	ErrFrontierEmpty = errors.New("frontier is empty")
	ErrUnknownNode   = errors.New("unknown node")
	ErrEmptyGraph    = errors.New("graph has no nodes")
)
