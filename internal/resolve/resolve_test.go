package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	cases := []struct {
		line     string
		wantPath string
	}{
		{"GET / HTTP/1.1", ""},
		{"GET /coffee HTTP/1.1", "coffee"},
		{"GET /a/b/c.html HTTP/1.1", "a/b/c.html"},
		{"GET /Test.html HTTP/1.1", "Test.html"},
		{"HEAD /x HTTP/1.0", "x"},
	}
	for _, c := range cases {
		got, err := ParsePath(c.line)
		require.NoError(t, err, c.line)
		assert.Equal(t, c.wantPath, got, c.line)
	}

	for _, bad := range []string{"", "GET", "OPTIONS * HTTP/1.1", "GET /nospace"} {
		_, err := ParsePath(bad)
		assert.ErrorIs(t, err, ErrMalformedRequest, "%q", bad)
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "real.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "subdir"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "subdir", "nested.html"), []byte("<p>hi</p>"), 0o644))

	r := Resolver{Root: root}

	res := r.Resolve("GET / HTTP/1.1")
	assert.Equal(t, Home, res.Kind)

	res = r.Resolve("GET /real.txt HTTP/1.1")
	assert.Equal(t, File, res.Kind)
	assert.Equal(t, filepath.Join(root, "real.txt"), res.Path)

	res = r.Resolve("GET /subdir/nested.html HTTP/1.1")
	assert.Equal(t, File, res.Kind)

	// A directory is not a servable file
	res = r.Resolve("GET /subdir HTTP/1.1")
	assert.Equal(t, Missing, res.Kind)

	res = r.Resolve("GET /missing.html HTTP/1.1")
	assert.Equal(t, Missing, res.Kind)

	// Malformed lines fall back to Missing rather than failing
	res = r.Resolve("garbage with no slash")
	assert.Equal(t, Missing, res.Kind)
	res = r.Resolve("")
	assert.Equal(t, Missing, res.Kind)
}

func TestResolveConfinesTraversal(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "docroot")
	require.NoError(t, os.Mkdir(root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(parent, "secret.txt"), []byte("s3cret"), 0o644))

	r := Resolver{Root: root}

	res := r.Resolve("GET /../secret.txt HTTP/1.1")
	assert.Equal(t, Missing, res.Kind)

	res = r.Resolve("GET /a/../../secret.txt HTTP/1.1")
	assert.Equal(t, Missing, res.Kind)
}
