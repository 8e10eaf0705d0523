package errs

import (
	"github.com/clargs/clargs/i18n"
)

// Parse errors. Each is terminal for the parse attempt that produced it.
var (
	// ErrTooFewArguments - fewer tokens than declared required positional slots
	ErrTooFewArguments = i18n.NewError(ErrTooFewArgumentsKey)
	// ErrTooManyArguments - a token matched no flag and no positional slot was left.
	// Args: the token.
	ErrTooManyArguments = i18n.NewError(ErrTooManyArgumentsKey)
	// ErrMissingArgumentValue - a value flag had no usable value and no default.
	// Args: the argument name.
	ErrMissingArgumentValue = i18n.NewError(ErrMissingArgumentValueKey)
	// ErrDuplicateArgument - the same argument was matched twice. Args: the argument name.
	ErrDuplicateArgument = i18n.NewError(ErrDuplicateArgumentKey)
	// ErrRequiredArgumentMissing - required arguments were never satisfied.
	// Args: the comma-separated argument names.
	ErrRequiredArgumentMissing = i18n.NewError(ErrRequiredArgumentMissingKey)
)

// All lists every parse error sentinel
var All = []i18n.TranslatableError{
	ErrTooFewArguments,
	ErrTooManyArguments,
	ErrMissingArgumentValue,
	ErrDuplicateArgument,
	ErrRequiredArgumentMissing,
}
