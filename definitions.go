package clargs

import (
	"io"
	"strings"

	"github.com/iancoleman/strcase"
)

const (
	// PathKey is the Values key holding the invoked executable path
	PathKey = "path"
	// DefaultPath is stored under PathKey when the token stream is empty
	DefaultPath = `.\`
	// TrueValue is bound to arguments which do not accept a value
	TrueValue = "true"
)

// ConfigureArgumentFunc is used when defining an Arg with NewArg or Arg.Set
type ConfigureArgumentFunc func(arg *Arg)

// ConfigureAppFunc is used when defining an App with NewAppWith
type ConfigureAppFunc func(app *App, err *error)

// NameConversionFunc derives an environment variable name from an argument name.
// Returning "" means the argument has no implicit environment variable.
type NameConversionFunc func(name string) string

// Renderer formats the help text of an App
type Renderer interface {
	Render(w io.Writer, app *App) error
}

// EnvNameWithPrefix returns a NameConversionFunc producing SCREAMING_SNAKE_CASE
// names, joined to prefix with an underscore when prefix is not empty. For
// example EnvNameWithPrefix("myapp") maps "logLevel" to "MYAPP_LOG_LEVEL".
func EnvNameWithPrefix(prefix string) NameConversionFunc {
	prefix = strcase.ToScreamingSnake(prefix)
	return func(name string) string {
		n := strcase.ToScreamingSnake(name)
		if n == "" || prefix == "" {
			return n
		}

		return prefix + "_" + n
	}
}

// reserved tokens a caller may claim for its own help or version handling
var (
	helpTokens    = []string{"-help", "--help"}
	versionTokens = []string{"-version", "--version"}
)

func containsFold(candidates []string, tokens ...string) bool {
	for _, c := range candidates {
		for _, t := range tokens {
			if strings.EqualFold(c, t) {
				return true
			}
		}
	}

	return false
}
