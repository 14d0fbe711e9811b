package web

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
)

func itoa(value int) string {
	return strconv.Itoa(value)
}

func esc(value string) string {
	return templ.EscapeString(value)
}

func write(w io.Writer, parts ...string) {
	for _, part := range parts {
		_, _ = io.WriteString(w, part)
	}
}

var prodAssetVersion = func() string {
	startedAt := time.Now().UTC().Format(time.RFC3339)
	sum := sha256.Sum256([]byte(startedAt))
	return hex.EncodeToString(sum[:8])
}()

// assetPath appends a content hash to embedded static paths so browsers
// pick up new builds.
func assetPath(path string) string {
	if path == "" || !strings.HasPrefix(path, "/static/") {
		return path
	}
	if os.Getenv("ENV") == "prod" {
		return appendAssetVersion(path, prodAssetVersion)
	}
	data, err := fs.ReadFile(staticFiles, strings.TrimPrefix(path, "/"))
	if err != nil {
		return path
	}
	sum := sha256.Sum256(data)
	return appendAssetVersion(path, hex.EncodeToString(sum[:8]))
}

func appendAssetVersion(path string, hash string) string {
	if hash == "" {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&v=" + hash
	}
	return path + "?v=" + hash
}

func pageHead(w io.Writer, title string) {
	write(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>`, esc(title), `</title>
    <link rel="stylesheet" href="`, assetPath("/static/styles.css"), `"/>
  </head>
  <body>
    <main class="shell">
`)
}

func pageFoot(w io.Writer) {
	write(w, `    </main>
  </body>
</html>
`)
}
