package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *DocumentStore {
	store, err := NewDocumentStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestDocumentStore_Save(t *testing.T) {
	store := newTestStore(t)

	ref, err := store.Save("Plan Obra.pdf", strings.NewReader("%PDF-1.4"))

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, "_Plan_Obra.pdf"), "got %q", ref)
	assert.Regexp(t, `^\d{8}_\d{6}_`, ref)
	assert.True(t, store.Exists(ref))

	path, err := store.Path(ref)
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(content))
}

func TestDocumentStore_Save_RejectsNonPDF(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save("malware.exe", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file type not allowed")

	_, err = store.Save("notes.txt", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestDocumentStore_Path_RejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	for _, ref := range []string{
		"../secret.pdf",
		"../../etc/passwd",
		"sub/dir.pdf",
		"",
	} {
		_, err := store.Path(ref)
		assert.Error(t, err, "reference %q should be rejected", ref)
	}
}

func TestDocumentStore_Remove(t *testing.T) {
	store := newTestStore(t)

	ref, err := store.Save("doc.pdf", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ref))
	assert.False(t, store.Exists(ref))

	// Removing a missing document is not an error.
	assert.NoError(t, store.Remove(ref))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "report.pdf", "report.pdf"},
		{"spaces", "plan de obra.pdf", "plan_de_obra.pdf"},
		{"accents", "diseño günther.pdf", "diseno_gunther.pdf"},
		{"path stripped", filepath.Join("..", "up", "doc.pdf"), "doc.pdf"},
		{"hostile charset", "a<b>|c?.pdf", "abc.pdf"},
		{"nothing usable", "¿¿¿", "document.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestAllowedFile(t *testing.T) {
	assert.True(t, AllowedFile("doc.pdf"))
	assert.True(t, AllowedFile("DOC.PDF"))
	assert.False(t, AllowedFile("doc.docx"))
	assert.False(t, AllowedFile("doc"))
	assert.False(t, AllowedFile(""))
}
