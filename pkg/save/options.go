// Package save holds the options shared by every export path: target
// file or writer, and the serialisation format.
package save

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format is an export serialisation.
type Format int

// Format constants.
const (
	FormatJSON Format = iota
	FormatYAML
)

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// ParseFormat maps "json", "yaml" or "yml" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatJSON, fmt.Errorf("unsupported export format %q (want json or yaml)", s)
}

// FormatForPath guesses a format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

// Encode writes v to w in format f.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return fmt.Errorf("unsupported export format %s", f)
}

// Options is the configuration for save.
type Options struct {
	path   string
	writer io.Writer
	format Format
	set    bool
}

// Path returns the target file path, if any.
func (s *Options) Path() string {
	return s.path
}

// Writer returns the target writer, if any.
func (s *Options) Writer() io.Writer {
	return s.writer
}

// Format returns the export format. When none was set explicitly the
// format follows the path extension.
func (s *Options) Format() Format {
	if !s.set && s.path != "" {
		return FormatForPath(s.path)
	}
	return s.format
}

// Defaults returns the default save options.
func Defaults() *Options {
	return &Options{format: FormatJSON}
}

// Apply applies the given options to the save options.
func (s *Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(s)
	}
	return *s
}

// Option is a function that configures save options.
type Option func(*Options)

// WithFormat for custom output format.
func WithFormat(f Format) Option {
	return func(s *Options) {
		s.format = f
		s.set = true
	}
}

// WithPath for filesystem saves.
func WithPath(path string) Option {
	return func(s *Options) {
		s.path = path
	}
}

// WithWriter for custom outputs.
func WithWriter(w io.Writer) Option {
	return func(s *Options) {
		s.writer = w
	}
}
