package server

import (
	"io"
	"log"
	"os"

	"github.com/msmith/webworker/internal/page"
	"github.com/msmith/webworker/internal/request"
	"github.com/msmith/webworker/internal/resolve"
	"github.com/msmith/webworker/internal/response"
)

type Handler func(w *response.Writer, req *request.Request)

const copyBuffer = 1024

// errorFragment is emitted inline when a body source fails mid-stream; the
// header block is already on the wire by then, so this is the best that can
// be salvaged.
const errorFragment = "<html><head>Bad request</head></html>"

// SiteHandler serves one request against the given document root: resolve the
// request line, write the status and header block, then stream the matching
// body. Every failure is logged and absorbed; the connection always receives
// as well-formed a response as the failure allows.
func SiteHandler(root string) Handler {
	resolver := resolve.Resolver{Root: root}

	return func(w *response.Writer, req *request.Request) {
		res := resolver.Resolve(req.RequestLine)

		status := response.StatusOK
		if res.Kind == resolve.Missing {
			status = response.StatusNotFound
		}
		if err := w.WriteStatusLine(status); err != nil {
			return
		}
		if err := w.WriteHeaders(response.GetDefaultHeaders()); err != nil {
			return
		}

		switch res.Kind {
		case resolve.Home:
			body, err := page.RenderHome(root)
			if err != nil {
				log.Printf("Error rendering home page: %v", err)
				w.WriteBody([]byte(errorFragment))
				return
			}
			if _, err := w.WriteBody(body); err != nil {
				log.Printf("Error writing home page: %v", err)
			}
		case resolve.File:
			serveFile(w, res.Path)
		case resolve.Missing:
			body := page.NotFoundPage(root)
			if body == nil {
				// Best effort: 404 status with an empty body.
				return
			}
			if _, err := w.WriteBody(body); err != nil {
				log.Printf("Error writing not-found page: %v", err)
			}
		}
	}
}

// serveFile streams the file verbatim in chunks.
func serveFile(w *response.Writer, path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("Error opening %s: %v", path, err)
		w.WriteBody([]byte(errorFragment))
		return
	}
	defer f.Close()

	copyBody(w, f, path)
}

// copyBody copies src to the body in chunks. A mid-copy read failure appends
// the inline fragment after whatever partial body already went out.
func copyBody(w *response.Writer, src io.Reader, name string) {
	buf := make([]byte, copyBuffer)
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			if _, werr := w.WriteBody(buf[:n]); werr != nil {
				log.Printf("Error writing body from %s: %v", name, werr)
				return
			}
		}
		if rerr == io.EOF {
			return
		}
		if rerr != nil {
			log.Printf("Error streaming %s: %v", name, rerr)
			w.WriteBody([]byte(errorFragment))
			return
		}
	}
}
