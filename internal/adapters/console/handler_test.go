package console_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localstrings/internal/adapters/console"
	"localstrings/internal/domain"
	"localstrings/internal/domain/entities"
	"localstrings/internal/infrastructure/stringsfile"
	"localstrings/internal/ports/output"
)

type fakeUseCases struct {
	calls  []string
	report entities.UsageReport
	err    error
}

func (f *fakeUseCases) Generate(context.Context, output.EntryReader) (string, error) {
	f.calls = append(f.calls, "generate")
	return "Support/LocalString.swift", f.err
}

func (f *fakeUseCases) Validate(context.Context, output.EntryReader) (entities.UsageReport, error) {
	f.calls = append(f.calls, "validate")
	return f.report, f.err
}

func (f *fakeUseCases) Export(context.Context, output.EntryReader) (string, error) {
	f.calls = append(f.calls, "export")
	return "Support/active.en.toml", f.err
}

func newHandler(f *fakeUseCases, out *bytes.Buffer) *console.Handler {
	return console.NewHandler(f, f, f, out)
}

func entries() output.EntryReader {
	return stringsfile.NewReader(strings.NewReader(`"a" = "b";`))
}

func TestDispatch(t *testing.T) {
	for _, cmd := range domain.Commands() {
		f := &fakeUseCases{report: entities.UsageReport{}}
		var out bytes.Buffer

		require.NoError(t, newHandler(f, &out).Dispatch(context.Background(), cmd, entries()))
		assert.Equal(t, []string{cmd.String()}, f.calls)
	}
}

func TestDispatchUnknown(t *testing.T) {
	for _, cmd := range []domain.Command{domain.CommandUnknown, domain.Command(42)} {
		f := &fakeUseCases{}
		var out bytes.Buffer

		err := newHandler(f, &out).Dispatch(context.Background(), cmd, entries())
		assert.ErrorIs(t, err, domain.ErrUnknownCommand)
		assert.Equal(t, console.ExitDispatch, console.ExitCode(err))
		assert.Empty(t, f.calls)
	}
}

func TestDispatchValidatePrintsReport(t *testing.T) {
	report := entities.UsageReport{"app_title": {}}
	f := &fakeUseCases{report: report, err: &domain.ValidationError{Report: report}}
	var out bytes.Buffer

	err := newHandler(f, &out).Dispatch(context.Background(), domain.CommandValidate, entries())
	assert.ErrorIs(t, err, domain.ErrKeysStillUsed)
	assert.Equal(t, "{\"app_title\": []}\n", out.String())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, console.ExitOK, console.ExitCode(nil))
	assert.Equal(t, console.ExitFailure, console.ExitCode(errors.New("boom")))
	assert.Equal(t, console.ExitFailure, console.ExitCode(fmt.Errorf("%w: x", domain.ErrInputUnreadable)))
	assert.Equal(t, console.ExitFailure, console.ExitCode(&domain.ValidationError{}))
	assert.Equal(t, console.ExitDispatch, console.ExitCode(fmt.Errorf("%w: 7", domain.ErrUnknownCommand)))
}

func TestErrorMessage(t *testing.T) {
	assert.Empty(t, console.ErrorMessage(nil))
	assert.Equal(t, "❌ boom", console.ErrorMessage(errors.New("boom")))

	msg := console.ErrorMessage(fmt.Errorf("%w: open x", domain.ErrInputUnreadable))
	assert.Contains(t, msg, "❌ localization file cannot be read: open x")
	assert.Contains(t, msg, "Localizable.strings")
}
