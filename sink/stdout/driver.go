// transposer/sink/stdout/driver.go
package stdout

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"transposer/frame"
	"transposer/internal/spec"
	"transposer/sink"
)

/* ────────── public YAML config ────────── */
type Config = spec.StdoutSink

/* ────────── driver ────────── */
type driver struct {
	cfg Config
	out io.Writer

	mu  sync.Mutex // serializes writes
	seq atomic.Uint64
}

// New returns a stdout sink writing to w instead of os.Stdout.
func New(w io.Writer, cfg Config) sink.Adapter {
	return &driver{cfg: cfg, out: w}
}

/* ────────── sink.Adapter ────────── */
func (d *driver) Configure(raw any) error {
	c, ok := raw.(Config)
	if !ok {
		return fmt.Errorf("stdout-sink: expected Config, got %T", raw)
	}
	d.cfg = c
	return nil
}

func (d *driver) Push(f *frame.Frame) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.out == nil {
		d.out = os.Stdout
	}
	if d.cfg.PrintCounter {
		if _, err := fmt.Fprintf(d.out, "[sink %06d] %s[%d]@%d\n",
			d.seq.Add(1), f.Topic, f.Partition, f.Offset); err != nil {
			return err
		}
	}
	if _, err := d.out.Write(f.Value); err != nil {
		return err
	}
	if n := len(f.Value); n == 0 || f.Value[n-1] != '\n' {
		_, err := io.WriteString(d.out, "\n")
		return err
	}
	return nil
}

func (d *driver) Close() error { return nil }

/* ────────── auto-register ────────── */
func init() {
	sink.Register("stdout", func() sink.Adapter { return &driver{} })
}
