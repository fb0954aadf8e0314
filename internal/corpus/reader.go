// Package corpus streams review records out of the Goodreads dump: a JSON
// Lines document reachable as a local file, a gzip-compressed file, or an
// http(s) URL.
package corpus

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"

	"review-insights-go/internal/types"
)

// Review text runs long; the dump stays well under this per line.
const maxLineBytes = 4 * 1024 * 1024

// ErrMissingBookID marks records whose book_id is absent, null or zero.
var ErrMissingBookID = errors.New("missing book_id")

// ParseError is a recoverable per-record failure: the caller skips the record
// and keeps scanning. Any non-ParseError from the reader is terminal.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Reader decodes a JSON Lines stream into review records.
type Reader struct {
	r io.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// All yields one (record, nil) per well-formed line. Malformed lines yield
// (zero, *ParseError) and the stream continues; an underlying read failure
// yields a terminal error and ends the sequence. Blank lines are skipped.
// The sequence is single-pass: reprocessing requires a fresh Reader over a
// fresh source.
func (r *Reader) All() iter.Seq2[types.ReviewRecord, error] {
	return func(yield func(types.ReviewRecord, error) bool) {
		sc := bufio.NewScanner(r.r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

		line := 0
		for sc.Scan() {
			line++
			raw := bytes.TrimSpace(sc.Bytes())
			if len(raw) == 0 {
				continue
			}

			var rec types.ReviewRecord
			if err := json.Unmarshal(raw, &rec); err != nil {
				if !yield(types.ReviewRecord{}, &ParseError{Line: line, Err: err}) {
					return
				}
				continue
			}
			if rec.BookID == 0 {
				if !yield(types.ReviewRecord{}, &ParseError{Line: line, Err: ErrMissingBookID}) {
					return
				}
				continue
			}
			if !yield(rec, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield(types.ReviewRecord{}, fmt.Errorf("read corpus: %w", err))
		}
	}
}
