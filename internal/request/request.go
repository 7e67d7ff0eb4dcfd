package request

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/msmith/webworker/internal/headers"
)

type requestState int

const (
	bufferSize = 8

	stateInitialized requestState = iota
	stateParsingHeaders
	stateDone
)

// ErrNoRequestLine reports a stream that errored or closed before the first
// line was available.
var ErrNoRequestLine = errors.New("stream closed before a request line was read")

// Request is the read side of one connection: the raw request line plus
// whatever header fields the drain happened to record. Only the request line
// carries meaning downstream.
type Request struct {
	RequestLine string
	Headers     headers.Headers

	state requestState
}

// RequestFromReader reads the request line from reader, then consumes header
// lines until the blank terminator or the end of the stream. Data may arrive
// in arbitrary chunks. Header content is drained, never validated.
func RequestFromReader(reader io.Reader) (*Request, error) {
	buf := make([]byte, bufferSize)
	readToIndex := 0

	r := Request{
		Headers: headers.NewHeaders(),
		state:   stateInitialized,
	}

	for r.state != stateDone {
		if readToIndex == len(buf) {
			tmpBuf := make([]byte, len(buf)*2)
			copy(tmpBuf, buf[:readToIndex])
			buf = tmpBuf
		}

		n, err := reader.Read(buf[readToIndex:])
		if n > 0 {
			readToIndex += n
			bytesParsed := r.parse(buf[:readToIndex])
			copy(buf, buf[bytesParsed:readToIndex])
			readToIndex -= bytesParsed
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				if r.state == stateInitialized {
					return nil, fmt.Errorf("reading request: %w", err)
				}
				break
			}
			if r.state == stateInitialized {
				// BufferedReader semantics: a final unterminated line
				// still counts as the request line.
				if readToIndex > 0 {
					r.RequestLine = strings.TrimSuffix(string(buf[:readToIndex]), "\r")
					r.state = stateDone
					break
				}
				return nil, ErrNoRequestLine
			}
			// Stream ended mid-headers: the drain is done.
			break
		}
	}

	return &r, nil
}

// parse consumes as many complete lines as data holds, stepping the state
// machine. It cannot fail: the request line is taken verbatim and headers are
// drained leniently.
func (r *Request) parse(data []byte) int {
	totalParsed := 0
	for r.state != stateDone {
		switch r.state {
		case stateInitialized:
			idx := bytes.IndexByte(data[totalParsed:], '\n')
			if idx == -1 {
				return totalParsed
			}
			line := data[totalParsed : totalParsed+idx]
			r.RequestLine = strings.TrimSuffix(string(line), "\r")
			r.state = stateParsingHeaders
			totalParsed += idx + 1
		case stateParsingHeaders:
			n, done := r.Headers.Parse(data[totalParsed:])
			if n == 0 {
				return totalParsed
			}
			totalParsed += n
			if done {
				r.state = stateDone
			}
		}
	}
	return totalParsed
}
