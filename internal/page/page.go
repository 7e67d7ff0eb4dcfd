package page

import (
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"
)

const (
	// TemplateFile is the home-page template; it must exist under the
	// document root.
	TemplateFile = "TestBase.html"
	// MaterializedFile receives a copy of every substituted home page.
	MaterializedFile = "Test.html"
	// NotFoundFile is the fixed 404 body.
	NotFoundFile = "notFound.html"

	dateToken   = "{{cs371date}}"
	serverToken = "{{cs371server}}"

	bodyTimeFormat = "2006-01-02 15:04:05"
)

// Substitute replaces the date and server tokens in doc. Everything outside
// the tokens passes through untouched.
func Substitute(doc string, at time.Time, identity string) string {
	doc = strings.ReplaceAll(doc, dateToken, at.Format(bodyTimeFormat))
	doc = strings.ReplaceAll(doc, serverToken, identity)
	return doc
}

// ServerIdentity is the "<user> on <host>" string substituted for the server
// token. Lookups never fail the caller; placeholders cover the odd chroot or
// stripped environment.
func ServerIdentity() string {
	name := ""
	if u, err := user.Current(); err == nil {
		name = u.Username
	}
	if name == "" {
		name = os.Getenv("USER")
	}
	if name == "" {
		name = "unknown"
	}

	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "localhost"
	}

	return name + " on " + host
}

// RenderHome loads the template from root, substitutes both tokens, and
// returns the bytes to stream. A copy is also written to MaterializedFile as
// a best-effort side effect; a failed write is logged but never fails the
// response, which is served from memory.
func RenderHome(root string) ([]byte, error) {
	raw, err := os.ReadFile(filepath.Join(root, TemplateFile))
	if err != nil {
		return nil, err
	}

	rendered := Substitute(string(raw), time.Now(), ServerIdentity())

	if err := os.WriteFile(filepath.Join(root, MaterializedFile), []byte(rendered), 0o644); err != nil {
		log.Printf("Error materializing %s: %v", MaterializedFile, err)
	}

	return []byte(rendered), nil
}

// NotFoundPage returns the 404 body, or nil when the document itself cannot
// be read; the caller serves an empty body in that case.
func NotFoundPage(root string) []byte {
	body, err := os.ReadFile(filepath.Join(root, NotFoundFile))
	if err != nil {
		log.Printf("Error reading %s: %v", NotFoundFile, err)
		return nil
	}
	return body
}
