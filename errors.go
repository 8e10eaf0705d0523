package clargs

import (
	"strings"

	"github.com/clargs/clargs/errs"
	"github.com/clargs/clargs/i18n"
)

// ErrorKind identifies why parsing failed
type ErrorKind int

const (
	// TooFewArguments - fewer positional tokens than required slots
	TooFewArguments ErrorKind = iota
	// TooManyArguments - a token was left over after every slot was filled
	TooManyArguments
	// MissingArgumentValue - a value argument had no value and no default
	MissingArgumentValue
	// DuplicateArgument - an argument was matched more than once
	DuplicateArgument
	// RequiredArgumentMissing - required arguments were never satisfied
	RequiredArgumentMissing
)

func (k ErrorKind) String() string {
	switch k {
	case TooFewArguments:
		return "TooFewArguments"
	case TooManyArguments:
		return "TooManyArguments"
	case MissingArgumentValue:
		return "MissingArgumentValue"
	case DuplicateArgument:
		return "DuplicateArgument"
	case RequiredArgumentMissing:
		return "RequiredArgumentMissing"
	default:
		return "Unknown"
	}
}

// ParseError is returned by App.ParseArgs. Token is the offending command-line
// token when there is one; Names holds the offending argument name for MissingArgumentValue and
// DuplicateArgument and every missing name for RequiredArgumentMissing.
//
// ParseError unwraps to the matching sentinel of package errs, so
//
//	errors.Is(err, errs.ErrDuplicateArgument)
//
// holds for a DuplicateArgument failure.
type ParseError struct {
	Kind  ErrorKind
	Token string
	Names []string

	args []*Arg
	err  i18n.TranslatableError
}

func newParseError(kind ErrorKind, token string, args ...*Arg) *ParseError {
	pe := &ParseError{Kind: kind, Token: token, args: args}
	for _, a := range args {
		pe.Names = append(pe.Names, a.name)
	}

	switch kind {
	case TooFewArguments:
		pe.err = errs.ErrTooFewArguments
	case TooManyArguments:
		pe.err = errs.ErrTooManyArguments.WithArgs(token)
	case MissingArgumentValue:
		pe.err = errs.ErrMissingArgumentValue.WithArgs(strings.Join(pe.Names, ", "))
	case DuplicateArgument:
		pe.err = errs.ErrDuplicateArgument.WithArgs(strings.Join(pe.Names, ", "))
	case RequiredArgumentMissing:
		pe.err = errs.ErrRequiredArgumentMissing.WithArgs(strings.Join(pe.Names, ", "))
	}

	return pe
}

func (e *ParseError) Error() string {
	return e.err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.err
}

// Translate renders the error with the messages of provider
func (e *ParseError) Translate(provider i18n.MessageProvider) string {
	return e.err.Translate(provider)
}

// Args returns the declarations named by the error
func (e *ParseError) Args() []*Arg {
	return e.args
}
