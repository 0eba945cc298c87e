package console

import (
	"errors"

	"github.com/urfave/cli/v2"

	"localstrings/internal/domain"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitDispatch = 255
)

var errUsage = errors.New("usage")

// ExitCode maps an error returned by the application to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, errUsage) {
		return ExitUsage
	}
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if domain.Code(err) == "unknown_command" {
		return ExitDispatch
	}
	return ExitFailure
}

// hint resolves a domain error code to advice printed after the error.
func hint(code string) string {
	switch code {
	case "input_unreadable":
		return "check the path of the Localizable.strings file."
	case "output_unwritable":
		return "the target directory must exist and be writable (see --target-dir)."
	case "keys_still_used":
		return "replace the raw keys with the generated accessors, then validate again."
	case "identifier_collision":
		return "rename one of the keys so their accessor names differ."
	case "invalid_config":
		return "check the flags, LOCALSTRINGS_* variables and the TOML file."
	default:
		return ""
	}
}

// ErrorMessage is the line printed on stderr when a run fails.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := "❌ " + err.Error()
	if h := hint(domain.Code(err)); h != "" {
		msg += "\n   " + h
	}
	return msg
}
