package input

import (
	"context"

	"localstrings/internal/ports/output"
)

type GenerateUseCase interface {
	// Generate writes the accessor enum and returns the path it wrote.
	Generate(ctx context.Context, entries output.EntryReader) (string, error)
}
