package main

import "go.uber.org/zap"

// searchOptions holds the settings of one PathSearcher. It is configured via Option functions.
type searchOptions struct {
	maxExpansions int
	sinks         []PathSink
	logger        *zap.Logger
}

// Option configures a PathSearcher
type Option func(o *searchOptions)

// WithMaxExpansions caps the number of nodes a search may expand before it gives up
// with ErrSearchAborted. Zero means unbounded. It will panic if negative.
func WithMaxExpansions(max int) Option {
	return func(o *searchOptions) {
		if max < 0 {
			panic("max expansions must not be negative")
		}
		o.maxExpansions = max
	}
}

// WithPathSink adds a sink that receives the finished path.
func WithPathSink(sink PathSink) Option {
	return func(o *searchOptions) {
		if sink != nil {
			o.sinks = append(o.sinks, sink)
		}
	}
}

// WithLogger sets the logger used for debug output of the search.
func WithLogger(logger *zap.Logger) Option {
	return func(o *searchOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
