package console

import (
	"context"
	"fmt"
	"io"

	"localstrings/internal/domain"
	"localstrings/internal/ports/input"
	"localstrings/internal/ports/output"
)

// Handler runs a parsed command through its use case.
type Handler struct {
	generateUseCase input.GenerateUseCase
	validateUseCase input.ValidateUseCase
	exportUseCase   input.ExportUseCase
	out             io.Writer
}

// NewHandler creates a Handler. out receives the validation report.
func NewHandler(
	generateUseCase input.GenerateUseCase,
	validateUseCase input.ValidateUseCase,
	exportUseCase input.ExportUseCase,
	out io.Writer,
) *Handler {
	return &Handler{
		generateUseCase: generateUseCase,
		validateUseCase: validateUseCase,
		exportUseCase:   exportUseCase,
		out:             out,
	}
}

// Dispatch runs cmd against entries. CommandUnknown, or any value outside the
// declared commands, fails with domain.ErrUnknownCommand.
func (h *Handler) Dispatch(ctx context.Context, cmd domain.Command, entries output.EntryReader) error {
	switch cmd {
	case domain.CommandGenerate:
		_, err := h.generateUseCase.Generate(ctx, entries)
		return err
	case domain.CommandValidate:
		report, err := h.validateUseCase.Validate(ctx, entries)
		if report != nil {
			fmt.Fprintln(h.out, report)
		}
		return err
	case domain.CommandExport:
		_, err := h.exportUseCase.Export(ctx, entries)
		return err
	case domain.CommandUnknown:
	}
	return fmt.Errorf("%w: %s", domain.ErrUnknownCommand, cmd)
}
