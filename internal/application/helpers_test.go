package application_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"localstrings/internal/infrastructure/stringsfile"
)

// memWriter records writes instead of touching the disk.
type memWriter struct {
	files map[string][]byte
	err   error
}

func newMemWriter() *memWriter { return &memWriter{files: map[string][]byte{}} }

func (w *memWriter) Write(path string, data []byte) error {
	if w.err != nil {
		return w.err
	}
	w.files[path] = append([]byte(nil), data...)
	return nil
}

var errDiskFull = errors.New("disk full")

func reader(lines ...string) *stringsfile.Reader {
	return stringsfile.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
