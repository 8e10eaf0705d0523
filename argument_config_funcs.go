package clargs

// WithShortFlag appends a short alias. Aliases are compared verbatim, so the
// leading dash is part of the alias: WithShortFlag("-v") matches "-v" only.
func WithShortFlag(alias string) ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.AddShort(alias)
	}
}

// WithLongFlag appends a long alias such as "--verbose"
func WithLongFlag(alias string) ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.AddLong(alias)
	}
}

// WithValue marks the argument as consuming the next token as its value
func WithValue() ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.TakesValue()
	}
}

// WithHelp the help text will be used in usage output presented to the user
func WithHelp(help string) ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.Describe(help)
	}
}

// WithDefaultValue sets the value used when the argument is not supplied.
// Arguments with a default are never required.
func WithDefaultValue(value string) ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.SetDefault(value)
	}
}

// WithEnv names the environment variable whose presence satisfies the argument
func WithEnv(name string) ConfigureArgumentFunc {
	return func(arg *Arg) {
		arg.FromEnv(name)
	}
}

// WithRequired when true, the argument must be supplied on the command-line,
// through its environment variable or through a default
func WithRequired(required bool) ConfigureArgumentFunc {
	return func(arg *Arg) {
		if required {
			arg.Require()
		} else {
			arg.required = false
		}
	}
}
