package headers

import (
	"bytes"
	"strings"
)

// Headers holds field names lowercased. On the request side it only records
// what the drain happens to see; on the response side it is the set that gets
// written to the wire.
type Headers map[string]string

func NewHeaders() Headers {
	return map[string]string{}
}

// Parse consumes at most one header line from data. It never rejects input:
// request headers are drained, not validated. A line with a colon is recorded,
// anything else is skipped. done is true once the blank terminator line has
// been consumed. n is 0 when data holds no complete line yet.
func (h Headers) Parse(data []byte) (n int, done bool) {
	idx := bytes.IndexByte(data, '\n')
	if idx == -1 {
		return 0, false
	}
	n = idx + 1

	line := bytes.TrimSuffix(data[:idx], []byte("\r"))
	if len(line) == 0 {
		return n, true
	}

	colonIdx := bytes.IndexByte(line, ':')
	if colonIdx == -1 {
		return n, false
	}

	key := strings.TrimSpace(string(line[:colonIdx]))
	value := strings.TrimSpace(string(line[colonIdx+1:]))
	if key == "" {
		return n, false
	}
	h.Set(key, value)

	return n, false
}

// Set appends to an existing value with a comma join.
func (h Headers) Set(key, value string) {
	key = strings.ToLower(key)
	if _, ok := h[key]; ok {
		h[key] += ", " + value
		return
	}
	h[key] = value
}

// SetNew overwrites any existing value.
func (h Headers) SetNew(key, value string) {
	key = strings.ToLower(key)
	h[key] = value
}

func (h Headers) Get(key string) (value string) {
	return h[strings.ToLower(key)]
}

func (h Headers) Del(key string) {
	delete(h, strings.ToLower(key))
}
