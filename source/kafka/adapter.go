// Package kafka reads documents to transpose from Kafka topics.
package kafka

import (
	"context"

	"transposer/frame"
)

// EmitFunc hands one consumed frame to the pipeline. A non-nil error stops
// the current claim and leaves the message unmarked.
type EmitFunc func(*frame.Frame) error

type Adapter interface {
	Configure(Config) error
	// Run consumes until ctx is done or Close is called.
	Run(context.Context, EmitFunc) error
	Close() error
}
