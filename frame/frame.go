// Package frame defines the unit of data moving through the pipeline.
package frame

import "time"

type Frame struct {
	Key     []byte
	Value   []byte
	Headers map[string][]byte

	// Origin of the frame; zero for frames not read from Kafka.
	Topic     string
	Partition int32
	Offset    int64
	Timestamp time.Time
}

// Header returns the named header and whether it was set.
func (f *Frame) Header(name string) (string, bool) {
	v, ok := f.Headers[name]
	return string(v), ok
}

// SetHeader stores a header, allocating the map on first use.
func (f *Frame) SetHeader(name, value string) {
	if f.Headers == nil {
		f.Headers = make(map[string][]byte, 1)
	}
	f.Headers[name] = []byte(value)
}
