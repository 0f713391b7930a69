package export

import (
	"bufio"
	"io"
	"strings"
)

// recordWriter is a gocsv.CSVWriter that quotes selected columns on every data
// row and any field that needs it. The header row is quoted only when needed.
type recordWriter struct {
	w           *bufio.Writer
	comma       rune
	alwaysQuote map[int]bool
	rows        int
	err         error
}

func newRecordWriter(w io.Writer, comma rune, alwaysQuote ...int) *recordWriter {
	cols := make(map[int]bool, len(alwaysQuote))
	for _, c := range alwaysQuote {
		cols[c] = true
	}
	return &recordWriter{w: bufio.NewWriter(w), comma: comma, alwaysQuote: cols}
}

func (r *recordWriter) Write(row []string) error {
	if r.err != nil {
		return r.err
	}
	header := r.rows == 0
	for i, field := range row {
		if i > 0 {
			if _, r.err = r.w.WriteRune(r.comma); r.err != nil {
				return r.err
			}
		}
		if (!header && r.alwaysQuote[i]) || r.needsQuotes(field) {
			field = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
		}
		if _, r.err = r.w.WriteString(field); r.err != nil {
			return r.err
		}
	}
	if _, r.err = r.w.WriteString("\n"); r.err != nil {
		return r.err
	}
	r.rows++
	return nil
}

func (r *recordWriter) needsQuotes(field string) bool {
	return strings.ContainsRune(field, r.comma) || strings.ContainsAny(field, "\"\r\n")
}

func (r *recordWriter) Flush() {
	if r.err == nil {
		r.err = r.w.Flush()
	}
}

func (r *recordWriter) Error() error {
	return r.err
}
