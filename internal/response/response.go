package response

import (
	"time"

	"github.com/msmith/webworker/internal/headers"
)

const (
	// ServerName is the fixed Server header value.
	ServerName = "Michael's very own server"

	headerTimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"
)

// GetDefaultHeaders is the header set every response carries. Content-Type is
// always text/html no matter what gets served. There is no Content-Length:
// the connection close delimits the body.
func GetDefaultHeaders() headers.Headers {
	h := headers.NewHeaders()
	h.Set("Date", time.Now().UTC().Format(headerTimeFormat))
	h.Set("Server", ServerName)
	h.Set("Connection", "close")
	h.Set("Content-Type", "text/html")

	return h
}
