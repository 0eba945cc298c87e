package input

import (
	"context"

	"localstrings/internal/ports/output"
)

type ExportUseCase interface {
	Export(ctx context.Context, entries output.EntryReader) (string, error)
}
