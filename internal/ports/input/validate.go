package input

import (
	"context"

	"localstrings/internal/domain/entities"
	"localstrings/internal/ports/output"
)

type ValidateUseCase interface {
	// Validate returns the usage report; a non-empty report comes with a
	// *domain.ValidationError.
	Validate(ctx context.Context, entries output.EntryReader) (entities.UsageReport, error)
}
