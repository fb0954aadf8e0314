package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"review-insights-go/internal/types"
)

const fixture = `{"book_id": 1, "review_text": "loved it"}

{"book_id": "2", "review_text": "meh"}
{"book_id": null, "review_text": "orphaned"}
not json
{"book_id": 3}
`

// collect drains a reader, separating records from the per-record parse
// errors the caller is expected to skip.
func collect(t *testing.T, r *Reader) (recs []types.ReviewRecord, parseErrs []error) {
	t.Helper()
	for rec, err := range r.All() {
		if err != nil {
			var pe *ParseError
			require.ErrorAs(t, err, &pe, "only parse errors expected for this input")
			parseErrs = append(parseErrs, err)
			continue
		}
		recs = append(recs, rec)
	}
	return recs, parseErrs
}

func TestReaderStreamsRecords(t *testing.T) {
	recs, parseErrs := collect(t, NewReader(strings.NewReader(fixture)))

	require.Len(t, recs, 3)
	assert.Equal(t, types.BookID(1), recs[0].BookID)
	assert.Equal(t, "loved it", recs[0].Text)
	assert.Equal(t, types.BookID(2), recs[1].BookID) // quoted id accepted
	assert.Equal(t, types.BookID(3), recs[2].BookID)
	assert.Empty(t, recs[2].Text) // absent review_text decodes empty

	require.Len(t, parseErrs, 2)
	assert.ErrorIs(t, parseErrs[0], ErrMissingBookID)

	var pe *ParseError
	require.ErrorAs(t, parseErrs[0], &pe)
	assert.Equal(t, 4, pe.Line) // blank lines still advance the line count
	require.ErrorAs(t, parseErrs[1], &pe)
	assert.Equal(t, 5, pe.Line)
}

func TestReaderZeroBookIDIsMissing(t *testing.T) {
	_, parseErrs := collect(t, NewReader(strings.NewReader(`{"book_id": 0, "review_text": "x"}`)))
	require.Len(t, parseErrs, 1)
	assert.ErrorIs(t, parseErrs[0], ErrMissingBookID)
}

func TestReaderEmptyInput(t *testing.T) {
	recs, parseErrs := collect(t, NewReader(strings.NewReader("")))
	assert.Empty(t, recs)
	assert.Empty(t, parseErrs)
}

func TestReaderStopsWhenConsumerBreaks(t *testing.T) {
	n := 0
	for _, err := range NewReader(strings.NewReader(fixture)).All() {
		if err == nil {
			n++
		}
		if n == 1 {
			break
		}
	}
	assert.Equal(t, 1, n)
}

func TestParseErrorMessage(t *testing.T) {
	pe := &ParseError{Line: 12, Err: ErrMissingBookID}
	assert.Equal(t, "line 12: missing book_id", pe.Error())
	assert.ErrorIs(t, pe, ErrMissingBookID)
}
