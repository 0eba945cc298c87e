package application

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"localstrings/internal/config"
	"localstrings/internal/domain"
	"localstrings/internal/domain/entities"
	"localstrings/internal/ports/input"
	"localstrings/internal/ports/output"
)

// Ensure Validator implements the input.ValidateUseCase port.
var _ input.ValidateUseCase = (*Validator)(nil)

type Validator struct {
	searchDir     string
	extension     string
	generatedName string
	listAllFiles  bool
	scanner       output.SourceScanner
	logger        *zap.Logger
}

func NewValidator(cfg *config.Config, scanner output.SourceScanner, logger *zap.Logger) *Validator {
	return &Validator{
		searchDir:     cfg.SearchDir,
		extension:     cfg.Extension,
		generatedName: cfg.GeneratedFileName(),
		listAllFiles:  cfg.ListAllFiles,
		scanner:       scanner,
		logger:        logger,
	}
}

// Validate looks for every key, as a raw substring, in each source file of the
// search tree except the generated enum file.
//
// Unless listAllFiles is set, the first file containing a key only creates the
// key's entry with an empty list; files found after it are appended.
func (v *Validator) Validate(ctx context.Context, entries output.EntryReader) (entities.UsageReport, error) {
	keys, err := distinctKeys(entries)
	if err != nil {
		return nil, err
	}

	files, err := v.scanner.Files(v.searchDir, v.extension)
	if err != nil {
		return nil, fmt.Errorf("scan sources: %w", err)
	}

	report := entities.UsageReport{}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if filepath.Base(path) == v.generatedName {
			continue
		}
		content, err := v.scanner.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		v.logger.Debug("scanned", zap.String("file", path))

		text := string(content)
		for _, key := range keys {
			if !strings.Contains(text, key) {
				continue
			}
			found, ok := report[key]
			if !ok && !v.listAllFiles {
				report[key] = []string{}
				continue
			}
			report[key] = append(found, path)
		}
	}

	v.logger.Info("🔎 sources checked",
		zap.Int("keys", len(keys)),
		zap.Int("files", len(files)),
		zap.Int("still_used", len(report)),
	)
	if !report.Empty() {
		return report, &domain.ValidationError{Report: report}
	}
	return report, nil
}

func distinctKeys(entries output.EntryReader) ([]string, error) {
	var keys []string
	for e, err := range entries.Entries() {
		if err != nil {
			return nil, err
		}
		keys = append(keys, e.Key)
	}
	slices.Sort(keys)
	return slices.Compact(keys), nil
}
