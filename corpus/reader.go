package corpus

import (
	"context"
	"fmt"
)

// Reader loads one corpus file format into a Table.
type Reader interface {
	Read(ctx context.Context, path string) (*Table, error)
	SupportedFormats() []string
}

// Registry maps file formats to readers.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry returns a registry with the built-in readers registered.
func NewRegistry() *Registry {
	r := &Registry{readers: make(map[string]Reader)}
	xlsx := &XLSXReader{}
	csv := &CSVReader{}

	for _, rd := range []Reader{xlsx, csv} {
		for _, f := range rd.SupportedFormats() {
			r.readers[f] = rd
		}
	}
	return r
}

// Get returns the reader for a format.
func (r *Registry) Get(format string) (Reader, error) {
	rd, ok := r.readers[format]
	if !ok {
		return nil, fmt.Errorf("no reader for format: %s", format)
	}
	return rd, nil
}

// Register adds or replaces the reader for a format.
func (r *Registry) Register(format string, rd Reader) {
	r.readers[format] = rd
}
