package domain

import (
	"errors"
	"fmt"

	"localstrings/internal/domain/entities"
)

// Domain errors.
var (
	ErrInputUnreadable     = errors.New("localization file cannot be read")
	ErrUnknownCommand      = errors.New("unknown command")
	ErrOutputUnwritable    = errors.New("output file cannot be written")
	ErrKeysStillUsed       = errors.New("localization strings are still used")
	ErrIdentifierCollision = errors.New("keys collapse to the same identifier")
	ErrInvalidConfig       = errors.New("invalid configuration")
)

// codes is ordered so that Code is deterministic when an error wraps several sentinels.
var codes = []struct {
	err  error
	code string
}{
	{ErrInputUnreadable, "input_unreadable"},
	{ErrUnknownCommand, "unknown_command"},
	{ErrOutputUnwritable, "output_unwritable"},
	{ErrKeysStillUsed, "keys_still_used"},
	{ErrIdentifierCollision, "identifier_collision"},
	{ErrInvalidConfig, "invalid_config"},
}

// Code returns the stable code of the domain error wrapped by err, or "" when
// err does not wrap one.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}

// ValidationError reports keys that are still referenced as raw literals.
type ValidationError struct {
	Report entities.UsageReport
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("localization strings are still used in: %s", e.Report)
}

func (e *ValidationError) Unwrap() error { return ErrKeysStillUsed }

// CollisionError reports two distinct entries that derive the same accessor name.
type CollisionError struct {
	Identifier string
	First      entities.Declaration
	Second     entities.Declaration
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("keys %q and %q both map to identifier %q", e.First.Key, e.Second.Key, e.Identifier)
}

func (e *CollisionError) Unwrap() error { return ErrIdentifierCollision }
