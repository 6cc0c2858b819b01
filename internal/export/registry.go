package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

// Encoder writes a decoded payload to w.
type Encoder func(w io.Writer, v any) error

// Registry maps output formats to encoders.
type Registry interface {
	Register(f Format, enc Encoder)
	EncoderFor(f Format) (Encoder, error)
}

type registry struct {
	mu       sync.RWMutex
	encoders map[Format]Encoder
}

// NewRegistry returns a registry with optional pre-registered encoders.
func NewRegistry(encoders map[Format]Encoder) Registry {
	r := &registry{
		encoders: make(map[Format]Encoder),
	}
	for f, enc := range encoders {
		r.Register(f, enc)
	}
	return r
}

// Register associates an encoder with a format. FormatRaw never has one.
func (r *registry) Register(f Format, enc Encoder) {
	if f == FormatRaw || enc == nil {
		return
	}

	r.mu.Lock()
	r.encoders[f] = enc
	r.mu.Unlock()
}

// EncoderFor returns the encoder registered for f.
func (r *registry) EncoderFor(f Format) (Encoder, error) {
	r.mu.RLock()
	enc := r.encoders[f]
	r.mu.RUnlock()

	if enc == nil {
		return nil, fmt.Errorf("no encoder registered for format %q", f)
	}
	return enc, nil
}

// DefaultRegistry wires up the built-in file formats.
func DefaultRegistry() Registry {
	return NewRegistry(map[Format]Encoder{
		FormatJSON: ToJSON,
		FormatCSV:  ToCSV,
		FormatYAML: ToYAML,
	})
}

// WriteFile encodes v in format f and writes it to path, replacing any
// existing file. Nothing is written if encoding fails.
func WriteFile(reg Registry, f Format, v any, path string) error {
	if reg == nil {
		return fmt.Errorf("export registry is nil")
	}
	enc, err := reg.EncoderFor(f)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := enc(&buf, v); err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
