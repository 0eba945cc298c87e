package output

import "localstrings/internal/domain/entities"

// SourceRenderer turns sorted declarations into the generated source file.
type SourceRenderer interface {
	Render(enumName string, decls []entities.Declaration) []byte
}

// FileWriter replaces the file at path with data.
type FileWriter interface {
	Write(path string, data []byte) error
}

// SourceScanner lists and reads the source files of a project tree.
type SourceScanner interface {
	// Files returns every file below root whose name ends in "."+ext.
	Files(root, ext string) ([]string, error)
	ReadFile(path string) ([]byte, error)
}
