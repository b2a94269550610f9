// Package config provides the configuration system for csvio.
// It defines the Config structure that the codec uses: the field and
// record delimiter strings applied uniformly to every parse and encode
// operation, and an optional default filename for the filename-less
// read/write overloads.
//
// Example usage:
//
//	cfg := config.New()
//	cfg.FieldDelimiter = "\t"
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"strings"

	"github.com/ajitpratap0/csvio/pkg/errors"
)

const (
	// DefaultFieldDelimiter separates fields within a record
	DefaultFieldDelimiter = ","
	// DefaultRecordDelimiter separates records within a stream
	DefaultRecordDelimiter = "\r\n"
)

// Config holds the codec configuration. Both delimiters may be more
// than one character. They are held by a Parser instance and applied
// to all operations it performs until reconfigured.
type Config struct {
	// FieldDelimiter separates fields within a record (e.g. "," or "\t")
	FieldDelimiter string `yaml:"field_delimiter" json:"field_delimiter"`

	// RecordDelimiter separates records within a stream, typically
	// "\r\n" (CRLF) or "\n" (LF)
	RecordDelimiter string `yaml:"record_delimiter" json:"record_delimiter"`

	// Filename is the stored default target for read and write
	// operations invoked without an explicit filename. Empty means no
	// default is set.
	Filename string `yaml:"filename,omitempty" json:"filename,omitempty"`
}

// New returns a Config with the default delimiters and no stored
// filename.
func New() *Config {
	return &Config{
		FieldDelimiter:  DefaultFieldDelimiter,
		RecordDelimiter: DefaultRecordDelimiter,
	}
}

// Validate checks the delimiter pair. Both delimiters must be
// non-empty, must differ, and neither may contain the other as a
// substring. Overlapping delimiters would make tokenization ambiguous,
// so they are rejected as a configuration error.
func (c *Config) Validate() error {
	if c.FieldDelimiter == "" {
		return errors.New(errors.ErrorTypeConfig, "field delimiter must not be empty")
	}
	if c.RecordDelimiter == "" {
		return errors.New(errors.ErrorTypeConfig, "record delimiter must not be empty")
	}
	if c.FieldDelimiter == c.RecordDelimiter {
		return errors.New(errors.ErrorTypeConfig, "field and record delimiters must differ")
	}
	if strings.Contains(c.FieldDelimiter, c.RecordDelimiter) ||
		strings.Contains(c.RecordDelimiter, c.FieldDelimiter) {
		return errors.Newf(errors.ErrorTypeConfig,
			"delimiters must not overlap: %q vs %q", c.FieldDelimiter, c.RecordDelimiter)
	}
	return nil
}

// Clone returns an independent copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
