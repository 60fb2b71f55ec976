// Package fs provides file-based output for scan results.
package fs

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mapacultural/editais"
)

// WriteAtomic writes a file via a temporary sibling and rename, so a failed
// export never leaves a partial file at path.
func WriteAtomic(path string, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// ExportName builds the default export file name for a scan session:
// "editais-<term-slug>-<date>.<format>".
func ExportName(session editais.Session, format string) string {
	slug := termSlug(session.Term)
	if slug == "" {
		slug = "busca"
	}
	return "editais-" + slug + "-" + session.StartedAt.Format("2006-01-02") + "." + format
}

// termSlug reduces a search term to a file-name-safe slug.
func termSlug(term string) string {
	normalized := editais.Normalize(term)
	var b strings.Builder
	lastDash := true
	for _, r := range normalized {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
