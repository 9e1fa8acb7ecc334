// Package markup validates markup well-formedness.
// It streams a document through a strict XML-style token decoder and
// reports every structural violation (attribute quoting, tag closing
// and nesting, entity syntax) without stopping at the first one.
package markup

import (
	"encoding/xml"
	"io"
	"strings"
)

// Violation describes one structural defect in a document.
type Violation struct {
	Line    int    // 1-based line of the defect, 0 when unknown
	Message string // Single-line description
}

// Validate feeds the document through a strict streaming parser and
// returns every structural violation found, in document order.
// Parsing continues past errors; it stops only at end of input or when
// the decoder can no longer make progress.
func Validate(markup string) []Violation {
	decoder := xml.NewDecoder(strings.NewReader(markup))
	decoder.Strict = true
	decoder.Entity = xml.HTMLEntity

	var violations []Violation
	var lastOffset int64 = -1

	for {
		_, err := decoder.Token()
		if err == nil {
			continue
		}
		if err == io.EOF {
			break
		}

		violations = append(violations, Violation{
			Line:    errorLine(err),
			Message: singleLine(err.Error()),
		})

		// A decoder stuck on the same input offset would report the
		// same violation forever.
		offset := decoder.InputOffset()
		if offset == lastOffset {
			break
		}
		lastOffset = offset
	}

	return violations
}

func errorLine(err error) int {
	if syntaxErr, ok := err.(*xml.SyntaxError); ok {
		return syntaxErr.Line
	}
	return 0
}

// singleLine normalizes newlines in a message to keep one violation on
// one log line.
func singleLine(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", " ")
	msg = strings.ReplaceAll(msg, "\n", " ")
	msg = strings.ReplaceAll(msg, "\r", " ")
	return msg
}
