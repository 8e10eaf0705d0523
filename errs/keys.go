// Package errs defines the parse failures reported by clargs together with
// their translation keys.
package errs

const (
	prefixKey = "clargs"
)

const (
	ErrorPrefixKey = prefixKey + ".error"
)

// Parse error keys
const (
	ErrTooFewArgumentsKey         = ErrorPrefixKey + ".too_few_arguments"
	ErrTooManyArgumentsKey        = ErrorPrefixKey + ".too_many_arguments"
	ErrMissingArgumentValueKey    = ErrorPrefixKey + ".missing_argument_value"
	ErrDuplicateArgumentKey       = ErrorPrefixKey + ".duplicate_argument"
	ErrRequiredArgumentMissingKey = ErrorPrefixKey + ".required_argument_missing"
)
