package application

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"localstrings/internal/config"
	"localstrings/internal/domain"
	"localstrings/internal/domain/entities"
	"localstrings/internal/ports/input"
	"localstrings/internal/ports/output"
)

// Ensure Exporter implements the input.ExportUseCase port.
var _ input.ExportUseCase = (*Exporter)(nil)

type Exporter struct {
	exportDir string
	locale    language.Tag
	localeErr error
	encoder   output.CatalogEncoder
	writer    output.FileWriter
	logger    *zap.Logger
}

func NewExporter(
	cfg *config.Config,
	encoder output.CatalogEncoder,
	writer output.FileWriter,
	logger *zap.Logger,
) *Exporter {
	locale, localeErr := cfg.LocaleTag()
	return &Exporter{
		exportDir: cfg.ExportDir,
		locale:    locale,
		localeErr: localeErr,
		encoder:   encoder,
		writer:    writer,
		logger:    logger,
	}
}

// Export writes the entries as a message catalog for the configured locale.
// When a key is defined more than once the last definition is kept.
func (e *Exporter) Export(ctx context.Context, entries output.EntryReader) (string, error) {
	if e.localeErr != nil {
		return "", e.localeErr
	}

	var ordered []entities.Entry
	index := make(map[string]int)
	for entry, err := range entries.Entries() {
		if err != nil {
			return "", err
		}
		if i, ok := index[entry.Key]; ok {
			ordered[i] = entry
			continue
		}
		index[entry.Key] = len(ordered)
		ordered = append(ordered, entry)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := e.encoder.Encode(e.locale, ordered)
	if err != nil {
		return "", err
	}

	path := filepath.Join(e.exportDir, e.encoder.Filename(e.locale))
	if err := e.writer.Write(path, data); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrOutputUnwritable, err)
	}
	e.logger.Info("✅ catalog exported",
		zap.String("path", path),
		zap.String("locale", e.locale.String()),
		zap.Int("messages", len(ordered)),
	)
	return path, nil
}
