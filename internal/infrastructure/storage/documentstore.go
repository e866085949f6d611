// Package storage persists uploaded engineering documents on the local
// filesystem. Record mutations and file operations are deliberately not
// transactional; callers treat failures here as best-effort cleanup.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const timestampLayout = "20060102_150405"

var allowedExtensions = map[string]bool{
	".pdf": true,
}

type DocumentStore struct {
	dir string
}

func NewDocumentStore(dir string) (*DocumentStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DocumentStore{dir: dir}, nil
}

// Save writes the document under a timestamp-prefixed, sanitized name and
// returns the stored reference.
func (s *DocumentStore) Save(originalName string, r io.Reader) (string, error) {
	if !AllowedFile(originalName) {
		return "", fmt.Errorf("file type not allowed: %s", originalName)
	}

	name := fmt.Sprintf("%s_%s", time.Now().Format(timestampLayout), SanitizeFilename(originalName))
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create document file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write document: %w", err)
	}

	return name, nil
}

// Path resolves a stored reference to an absolute path, rejecting anything
// that escapes the upload directory.
func (s *DocumentStore) Path(ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("empty document reference")
	}
	if ref != filepath.Base(ref) {
		return "", fmt.Errorf("invalid document reference: %s", ref)
	}
	return filepath.Join(s.dir, ref), nil
}

func (s *DocumentStore) Exists(ref string) bool {
	path, err := s.Path(ref)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

func (s *DocumentStore) Remove(ref string) error {
	path, err := s.Path(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to remove document: %w", err)
	}
	return nil
}

// AllowedFile reports whether the original filename carries an accepted
// extension. The portal only accepts engineering PDFs.
func AllowedFile(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// SanitizeFilename transliterates the name to ASCII (NFKD plus diacritic
// stripping) and filters it down to a safe charset.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)

	stripper := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if ascii, _, err := transform.String(stripper, name); err == nil {
		name = ascii
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}

	out := b.String()
	if out == "" || strings.Trim(out, ".") == "" {
		out = "document.pdf"
	}
	return out
}
