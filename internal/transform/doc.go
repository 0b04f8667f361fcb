// Package transform is the engine-side entry point for transposing encoded
// documents. The CLI, the gRPC transport and the pipeline stage all call a
// transform.Service so decoding, label resolution, rendering and metrics
// behave the same everywhere.
package transform
