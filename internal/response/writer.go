package response

import (
	"fmt"
	"io"

	"github.com/msmith/webworker/internal/headers"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type writerState int

const (
	StateWritingStatusLine writerState = iota
	StateWritingHeaders
	StateWritingBody
)

// Writer enforces response order on the wire: status line, then the header
// block terminated by one blank line, then body bytes. Header fields are
// immutable once written.
type Writer struct {
	writer io.Writer
	state  writerState
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		writer: w,
		state:  StateWritingStatusLine,
	}
}

func (w *Writer) WriteStatusLine(statusCode StatusCode) error {
	if w.state != StateWritingStatusLine {
		return fmt.Errorf("writer state out-of-order")
	}

	if _, err := w.writer.Write([]byte(statusCode.statusLine())); err != nil {
		return err
	}

	w.state = StateWritingHeaders
	return nil
}

func (w *Writer) WriteHeaders(h headers.Headers) error {
	if w.state != StateWritingHeaders {
		return fmt.Errorf("writer state out-of-order")
	}

	caser := cases.Title(language.English)
	for k, v := range h {
		line := caser.String(k) + ": " + v
		if _, err := w.writer.Write([]byte(line + "\r\n")); err != nil {
			return fmt.Errorf("error writing headers: %w", err)
		}
	}
	if _, err := w.writer.Write([]byte("\r\n")); err != nil {
		return err
	}

	w.state = StateWritingBody
	return nil
}

// WriteBody may be called repeatedly; file bodies are streamed in chunks.
func (w *Writer) WriteBody(p []byte) (int, error) {
	if w.state != StateWritingBody {
		return 0, fmt.Errorf("writer state out-of-order")
	}

	return w.writer.Write(p)
}
