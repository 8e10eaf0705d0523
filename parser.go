package clargs

import (
	"github.com/clargs/clargs/internal/parse"
)

// parseState is the bookkeeping of a single ParseArgs call. Declarations are
// only read, so one App can be parsed any number of times.
type parseState struct {
	app       *App
	args      []*Arg
	completed map[string]bool
	values    Values
	required  int
	optional  int
}

// ParseArgs parses args, whose first element is the invoked executable path,
// against the declarations of the App.
//
// Tokens equal to an alias of a declared Arg are bound to that Arg, anything
// else fills the next positional slot, required slots first. Arguments not
// supplied on the command line are then satisfied through their environment
// variable or their default. No partial result is returned on failure; the
// error is always a *ParseError.
func (a *App) ParseArgs(args []string) (Values, error) {
	s := &parseState{
		app:       a,
		args:      a.Args(),
		completed: make(map[string]bool),
		values:    make(Values),
	}

	if len(args) == 0 {
		s.values[PathKey] = DefaultPath
	} else {
		s.values[PathKey] = args[0]
		args = args[1:]
	}

	for i := 0; i < len(args); i++ {
		consumed, err := s.processToken(args, i)
		if err != nil {
			return nil, err
		}
		i += consumed
	}

	if s.required < len(a.untaggedRequired) {
		return nil, newParseError(TooFewArguments, "")
	}

	s.resolveEnv()
	if err := s.validateRequired(); err != nil {
		return nil, err
	}
	s.applyDefaults()

	return s.values, nil
}

// ParseString splits cmdLine using shell quoting rules and parses the result.
// The first word is the executable path.
func (a *App) ParseString(cmdLine string) (Values, error) {
	args, err := parse.Split(cmdLine)
	if err != nil {
		return nil, err
	}

	return a.ParseArgs(args)
}

// processToken handles args[i] and returns how many following tokens it consumed
func (s *parseState) processToken(args []string, i int) (int, error) {
	token := args[i]
	log := s.app.logger

	if arg := s.lookup(token); arg != nil {
		if s.completed[arg.id] {
			return 0, newParseError(DuplicateArgument, token, arg)
		}
		s.completed[arg.id] = true

		if !arg.acceptsValue {
			log.Debug("flag", "token", token, "arg", arg.name)
			s.values[arg.name] = TrueValue
			return 0, nil
		}

		if i+1 < len(args) && s.lookup(args[i+1]) == nil {
			log.Debug("value", "token", token, "arg", arg.name, "value", args[i+1])
			s.values[arg.name] = args[i+1]
			return 1, nil
		}
		if def, ok := arg.Default(); ok {
			log.Debug("value missing, using default", "token", token, "arg", arg.name)
			s.values[arg.name] = def
			return 0, nil
		}

		return 0, newParseError(MissingArgumentValue, token, arg)
	}

	if s.required < len(s.app.untaggedRequired) {
		name := s.app.untaggedRequired[s.required]
		log.Debug("required positional", "token", token, "name", name)
		s.values[name] = token
		s.required++
		return 0, nil
	}

	if s.optional < len(s.app.untaggedOptional) {
		name := s.app.untaggedOptional[s.optional]
		log.Debug("optional positional", "token", token, "name", name)
		s.values[name] = token
		s.optional++
		return 0, nil
	}

	return 0, newParseError(TooManyArguments, token)
}

// requests reports whether one of reserved appears in args where ParseArgs
// would read it as a flag or positional. Tokens consumed as the value of a
// preceding argument are skipped.
func (a *App) requests(args []string, reserved []string) bool {
	if len(args) < 2 {
		return false
	}

	s := &parseState{app: a, args: a.Args()}
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		if arg := s.lookup(rest[i]); arg != nil {
			if arg.acceptsValue && i+1 < len(rest) && s.lookup(rest[i+1]) == nil {
				i++
			}
			continue
		}
		if containsFold(reserved, rest[i]) {
			return true
		}
	}

	return false
}

// lookup returns the first declared Arg with an alias equal to token
func (s *parseState) lookup(token string) *Arg {
	for _, arg := range s.args {
		if arg.matches(token) {
			return arg
		}
	}

	return nil
}

func (s *parseState) resolveEnv() {
	for _, arg := range s.args {
		if s.completed[arg.id] {
			continue
		}
		name := s.app.envName(arg)
		if name == "" {
			continue
		}
		if _, present := s.app.envResolver.Lookup(name); !present {
			continue
		}

		value := TrueValue
		if def, ok := arg.Default(); ok {
			value = def
		}
		s.app.logger.Debug("environment", "arg", arg.name, "env", name)
		s.values[arg.name] = value
		s.completed[arg.id] = true
	}
}

func (s *parseState) validateRequired() error {
	var missing []*Arg
	for _, arg := range s.args {
		if !arg.isDone(s.completed[arg.id]) {
			missing = append(missing, arg)
		}
	}
	if len(missing) > 0 {
		return newParseError(RequiredArgumentMissing, "", missing...)
	}

	return nil
}

func (s *parseState) applyDefaults() {
	for _, arg := range s.args {
		if s.completed[arg.id] {
			continue
		}
		if def, ok := arg.Default(); ok {
			s.values[arg.name] = def
			s.completed[arg.id] = true
		}
	}
}
