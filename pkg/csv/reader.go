package csv

import (
	"bufio"
	"bytes"
	"io"

	"github.com/ajitpratap0/csvio/pkg/models"
)

// readerBufferSize is the size of the buffered reader wrapping the
// underlying stream.
const readerBufferSize = 4096

// RecordReader reads one record at a time from an underlying text
// stream, splitting on the configured record delimiter and tokenizing
// each chunk with the configured field delimiter. It consumes the
// stream's read position as it goes.
//
// ReadRecord returns io.EOF once the stream is exhausted; a
// successfully parsed empty record is never reported as EOF. A record
// delimiter terminating the final record does not produce a trailing
// empty record.
type RecordReader struct {
	src             *bufio.Reader
	fieldDelimiter  string
	recordDelimiter []byte
	buf             []byte
	done            bool
}

// NewRecordReader creates a RecordReader over r using the parser's
// delimiters.
func (p *Parser) NewReader(r io.Reader) *RecordReader {
	return &RecordReader{
		src:             bufio.NewReaderSize(r, readerBufferSize),
		fieldDelimiter:  p.cfg.FieldDelimiter,
		recordDelimiter: []byte(p.cfg.RecordDelimiter),
		buf:             make([]byte, 0, 128),
	}
}

// ReadRecord returns the next record-delimiter-terminated chunk as a
// Record, advancing the stream past the consumed delimiter. At end of
// stream it returns io.EOF. Any other error comes from the underlying
// stream.
func (rr *RecordReader) ReadRecord() (models.Record, error) {
	if rr.done {
		return nil, io.EOF
	}

	rr.buf = rr.buf[:0]
	for {
		b, err := rr.src.ReadByte()
		if err == io.EOF {
			rr.done = true
			if len(rr.buf) == 0 {
				// Stream ended cleanly on a record boundary.
				return nil, io.EOF
			}
			// Final record without a terminating delimiter.
			return tokenizeRecord(string(rr.buf), rr.fieldDelimiter), nil
		}
		if err != nil {
			return nil, err
		}

		rr.buf = append(rr.buf, b)
		if bytes.HasSuffix(rr.buf, rr.recordDelimiter) {
			chunk := rr.buf[:len(rr.buf)-len(rr.recordDelimiter)]
			return tokenizeRecord(string(chunk), rr.fieldDelimiter), nil
		}
	}
}
