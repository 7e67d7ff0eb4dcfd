package resolve

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrMalformedRequest reports a request line no path can be extracted from.
var ErrMalformedRequest = errors.New("malformed request line")

type Kind int

const (
	// Home is the empty path: serve the templated default page.
	Home Kind = iota
	// File is an existing regular file under the document root.
	File
	// Missing is everything else, including malformed request lines.
	Missing
)

func (k Kind) String() string {
	switch k {
	case Home:
		return "home"
	case File:
		return "file"
	default:
		return "missing"
	}
}

// Resource is the classification of one request against the document root.
// Path is set only for Kind == File and is already joined to the root.
type Resource struct {
	Kind Kind
	Path string
}

// ParsePath extracts the requested path from a raw request line: the token
// starts after the first '/' and ends at the first space that follows it.
// "GET /coffee HTTP/1.1" yields "coffee"; "GET / HTTP/1.1" yields "".
func ParsePath(requestLine string) (string, error) {
	slash := strings.IndexByte(requestLine, '/')
	if slash == -1 {
		return "", ErrMalformedRequest
	}
	rest := requestLine[slash+1:]
	space := strings.IndexByte(rest, ' ')
	if space == -1 {
		return "", ErrMalformedRequest
	}
	return rest[:space], nil
}

// Resolver classifies request lines against an explicit document root.
type Resolver struct {
	Root string
}

// Resolve never fails: malformed lines, directories, traversal escapes and
// nonexistent entries all classify as Missing. Classification reflects the
// filesystem at call time; nothing is cached.
func (r Resolver) Resolve(requestLine string) Resource {
	path, err := ParsePath(requestLine)
	if err != nil {
		return Resource{Kind: Missing}
	}
	if path == "" {
		return Resource{Kind: Home}
	}

	full := filepath.Join(r.Root, filepath.FromSlash(path))

	// Confine to the document root: a joined path that escapes it (".."
	// segments, absolute paths) is treated as absent.
	rel, err := filepath.Rel(r.Root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return Resource{Kind: Missing}
	}

	info, err := os.Stat(full)
	if err != nil || !info.Mode().IsRegular() {
		return Resource{Kind: Missing}
	}

	return Resource{Kind: File, Path: full}
}
