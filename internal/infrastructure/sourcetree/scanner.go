package sourcetree

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"localstrings/internal/domain"
	"localstrings/internal/ports/output"
)

var _ output.SourceScanner = Scanner{}

// Scanner walks a project tree on the local filesystem.
type Scanner struct{}

// Files globs **/*.<ext> below root, which must be an existing directory.
// Hidden files and anything inside a hidden directory (.git, .build, ...) are
// left out. Paths are joined to root.
func (Scanner) Files(root, ext string) ([]string, error) {
	info, err := os.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("search_dir %q does not exist: %w", root, domain.ErrInvalidConfig)
	case err != nil:
		return nil, fmt.Errorf("search_dir %q: %w: %w", root, domain.ErrInvalidConfig, err)
	case !info.IsDir():
		return nil, fmt.Errorf("search_dir %q is not a directory: %w", root, domain.ErrInvalidConfig)
	}

	matches, err := doublestar.Glob(os.DirFS(root), "**/*."+ext, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", root, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if hidden(m) {
			continue
		}
		files = append(files, filepath.Join(root, filepath.FromSlash(m)))
	}
	return files, nil
}

func (Scanner) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func hidden(slashPath string) bool {
	for _, part := range strings.Split(slashPath, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
