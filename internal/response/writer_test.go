package response

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterOrder(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	// Headers and body before the status line are rejected
	require.Error(t, w.WriteHeaders(GetDefaultHeaders()))
	_, err := w.WriteBody([]byte("x"))
	require.Error(t, err)

	require.NoError(t, w.WriteStatusLine(StatusOK))
	require.Error(t, w.WriteStatusLine(StatusOK))

	require.NoError(t, w.WriteHeaders(GetDefaultHeaders()))
	require.Error(t, w.WriteHeaders(GetDefaultHeaders()))

	// Body writes may repeat for streaming
	_, err = w.WriteBody([]byte("part one "))
	require.NoError(t, err)
	_, err = w.WriteBody([]byte("part two"))
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "HTTP/1.1 200 OK\r\n"))
	assert.True(t, strings.HasSuffix(out, "\r\n\r\npart one part two"))
}

func TestStatusLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteStatusLine(StatusNotFound))
	assert.Equal(t, "HTTP/1.1 404 Not Found\r\n", buf.String())

	buf.Reset()
	require.NoError(t, NewWriter(&buf).WriteStatusLine(StatusOK))
	assert.Equal(t, "HTTP/1.1 200 OK\r\n", buf.String())
}

func TestDefaultHeaders(t *testing.T) {
	h := GetDefaultHeaders()
	assert.Equal(t, ServerName, h.Get("Server"))
	assert.Equal(t, "close", h.Get("Connection"))
	assert.Equal(t, "text/html", h.Get("Content-Type"))
	assert.NotEmpty(t, h.Get("Date"))
	assert.True(t, strings.HasSuffix(h.Get("Date"), "GMT"))
}

func TestHeaderBlockTerminator(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteStatusLine(StatusOK))
	require.NoError(t, w.WriteHeaders(GetDefaultHeaders()))
	_, err := w.WriteBody([]byte("<html></html>"))
	require.NoError(t, err)

	// Exactly one blank line separates the header block from the body
	head, body, found := strings.Cut(buf.String(), "\r\n\r\n")
	require.True(t, found)
	assert.Equal(t, "<html></html>", body)
	assert.NotContains(t, head, "\r\n\r\n")
	for _, line := range strings.Split(head, "\r\n")[1:] {
		assert.Contains(t, line, ": ")
	}
}
