package pipeline

import (
	"bytes"
	"errors"
	"maps"

	"transposer/format"
	"transposer/frame"
	"transposer/internal/logging"
	"transposer/internal/transform"
)

// Frame headers read by the transpose stage.
const (
	HeaderLabel       = "x-transpose-label"
	HeaderFormat      = "x-transpose-format"
	HeaderContentType = "content-type"
)

type transposeStage struct {
	svc *transform.Service
}

// NewTransposeStage pivots each frame's document. An x-transpose-label
// header overrides the default label; an empty header value suppresses it.
func NewTransposeStage(svc *transform.Service) Stage {
	return &transposeStage{svc: svc}
}

func (s *transposeStage) Apply(f *frame.Frame) (*frame.Frame, error) {
	var req transform.Request
	if l, ok := f.Header(HeaderLabel); ok {
		req.Label = &l
	}
	if fm, ok := f.Header(HeaderFormat); ok {
		req.Format = fm
	}

	var buf bytes.Buffer
	res, err := s.svc.Transform(bytes.NewReader(f.Value), &buf, req)
	if err != nil {
		if errors.Is(err, transform.ErrBadDocument) || errors.Is(err, format.ErrUnknownFormat) {
			logging.For("pipeline").Warn("dropping frame",
				"topic", f.Topic, "partition", f.Partition, "offset", f.Offset, "err", err)
			return nil, nil
		}
		return nil, err
	}

	out := &frame.Frame{
		Key:       f.Key,
		Value:     buf.Bytes(),
		Headers:   maps.Clone(f.Headers),
		Topic:     f.Topic,
		Partition: f.Partition,
		Offset:    f.Offset,
		Timestamp: f.Timestamp,
	}
	out.SetHeader(HeaderContentType, res.ContentType)
	return out, nil
}
