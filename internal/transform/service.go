package transform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"transposer/codec"
	"transposer/format"
	"transposer/internal/telemetry"
	"transposer/transpose"
)

// ErrBadDocument marks input that could not be decoded.
var ErrBadDocument = errors.New("transform: bad document")

type Config struct {
	Label   string // default label, "" for none
	Format  string // default output format
	Surface string
	Metrics *telemetry.Metrics
}

// Request carries per-call overrides.
type Request struct {
	// Label overrides the default when non-nil; a pointer to "" suppresses it.
	Label  *string
	Format string
}

type Result struct {
	ContentType string
	Rows        int
}

type Service struct {
	cfg Config
	tr  *transpose.Transposer[string, any]
}

func NewService(cfg Config) *Service {
	if cfg.Format == "" {
		cfg.Format = "json"
	}
	return &Service{
		cfg: cfg,
		tr:  transpose.New[string, any](transpose.WithLabel(cfg.Label)),
	}
}

// Transform reads one document from r and writes the rendered table to w.
// Nothing is written to w unless rendering succeeded. Input that decodes
// but cannot be rendered in the requested format is an ErrBadDocument.
func (s *Service) Transform(r io.Reader, w io.Writer, req Request) (res Result, err error) {
	start := time.Now()
	defer func() { s.cfg.Metrics.Observe(s.cfg.Surface, res.Rows, time.Since(start), err) }()

	name := req.Format
	if name == "" {
		name = s.cfg.Format
	}
	enc, err := format.New(name)
	if err != nil {
		return Result{}, err
	}

	var opts []transpose.Option
	if req.Label != nil {
		opts = append(opts, transpose.WithLabel(*req.Label))
	}
	table, err := s.tr.Transpose(codec.Decode(r), opts...)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}
	var buf bytes.Buffer
	if err := enc.Encode(&buf, table); err != nil {
		if errors.Is(err, format.ErrUnrepresentable) {
			return Result{}, fmt.Errorf("%w: %w", ErrBadDocument, err)
		}
		return Result{}, fmt.Errorf("transform: encode %s: %w", name, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return Result{}, fmt.Errorf("transform: write: %w", err)
	}
	return Result{ContentType: enc.ContentType(), Rows: table.Len()}, nil
}
