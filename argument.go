package clargs

import (
	"strings"

	"github.com/google/uuid"
)

// Arg declares one named argument: the tokens it matches, whether it consumes
// a value, and how it is resolved when absent from the command line.
//
// An Arg with neither short nor long aliases can only be satisfied through its
// environment variable or its default.
type Arg struct {
	id           string
	name         string
	short        []string
	long         []string
	env          string
	acceptsValue bool
	required     bool
	help         string
	defaultValue *string
}

// NewArg creates an Arg which resolves under name in the parse result
func NewArg(name string, configs ...ConfigureArgumentFunc) *Arg {
	a := &Arg{
		id:   uuid.New().String(),
		name: name,
	}

	return a.Set(configs...)
}

// Set applies configs to the Arg and returns it
func (a *Arg) Set(configs ...ConfigureArgumentFunc) *Arg {
	for _, config := range configs {
		config(a)
	}

	return a
}

// AddShort appends a short alias such as "-v". Aliases are matched exactly.
func (a *Arg) AddShort(alias string) *Arg {
	a.short = append(a.short, alias)
	return a
}

// AddLong appends a long alias such as "--verbose". Aliases are matched exactly.
func (a *Arg) AddLong(alias string) *Arg {
	a.long = append(a.long, alias)
	return a
}

// TakesValue makes the Arg consume the token following it as its value
func (a *Arg) TakesValue() *Arg {
	a.acceptsValue = true
	return a
}

// Describe sets the help text
func (a *Arg) Describe(help string) *Arg {
	a.help = help
	return a
}

// SetDefault sets the value used when the Arg is otherwise unsatisfied.
// An Arg with a default is never required.
func (a *Arg) SetDefault(value string) *Arg {
	a.defaultValue = &value
	a.required = false
	return a
}

// FromEnv names an environment variable whose presence satisfies the Arg
func (a *Arg) FromEnv(name string) *Arg {
	a.env = name
	return a
}

// Require marks the Arg as mandatory. It has no effect on an Arg with a default.
func (a *Arg) Require() *Arg {
	if a.defaultValue == nil {
		a.required = true
	}
	return a
}

func (a *Arg) Name() string {
	return a.name
}

// Shorts returns a copy of the short aliases in declaration order
func (a *Arg) Shorts() []string {
	return append([]string(nil), a.short...)
}

// Longs returns a copy of the long aliases in declaration order
func (a *Arg) Longs() []string {
	return append([]string(nil), a.long...)
}

func (a *Arg) AcceptsValue() bool {
	return a.acceptsValue
}

func (a *Arg) IsRequired() bool {
	return a.required
}

func (a *Arg) Help() string {
	return a.help
}

// Default returns the default value and whether one was set
func (a *Arg) Default() (string, bool) {
	if a.defaultValue == nil {
		return "", false
	}

	return *a.defaultValue, true
}

// Env returns the explicitly declared environment variable name
func (a *Arg) Env() (string, bool) {
	return a.env, a.env != ""
}

// String renders the Arg as one row of an options table: short aliases,
// long aliases and a value marker separated by tabs, then the help text.
func (a *Arg) String() string {
	var sb strings.Builder
	if len(a.short) > 0 {
		sb.WriteString("  ")
		sb.WriteString(strings.Join(a.short, ","))
	}
	sb.WriteByte('\t')
	sb.WriteString(strings.Join(a.long, ","))
	sb.WriteByte('\t')
	if a.acceptsValue {
		sb.WriteString("(value)\t")
	}
	sb.WriteString(a.help)

	return sb.String()
}

// matches reports whether token equals one of the aliases
func (a *Arg) matches(token string) bool {
	for _, s := range a.short {
		if s == token {
			return true
		}
	}
	for _, l := range a.long {
		if l == token {
			return true
		}
	}

	return false
}

// isDone reports whether the Arg may be left unsatisfied
func (a *Arg) isDone(completed bool) bool {
	return completed || !a.required
}
