package clargs

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/clargs/clargs/internal/messages"
	"github.com/fatih/color"
)

var (
	diagColor = color.New(color.FgRed, color.Bold)
	argColor  = color.New(color.FgYellow)
)

// Parse parses args like ParseArgs and terminates the program when parsing
// cannot produce a result.
//
// Unless the App declares its own aliases for them, -help and --help print the
// help text to stdout and -version and --version print the name and version,
// both followed by exit status 0. These tokens are compared ignoring case and
// are recognised anywhere after the executable path, except where they are
// the value of a preceding argument.
//
// On a parse failure a diagnostic naming the offending token or arguments is
// written to stderr, followed by the help text, and the program exits with
// status 1. Parse returns nil when the exit function returns.
func (a *App) Parse(args []string) Values {
	if a.autoHelp && !a.manualHelp && a.requests(args, helpTokens) {
		a.logger.Debug("automatic help requested")
		if err := a.PrintHelp(a.stdout); err != nil {
			a.logger.Error("failed to render help", "error", err)
		}
		a.exitFunc(0)
		return nil
	}
	if a.autoVersion && !a.manualVersion && a.requests(args, versionTokens) {
		a.logger.Debug("automatic version requested")
		fmt.Fprintf(a.stdout, "%s %s\n", (&DefaultRenderer{}).Header(a), a.version)
		a.exitFunc(0)
		return nil
	}

	values, err := a.ParseArgs(args)
	if err == nil {
		return values
	}

	a.logger.Debug("parse failed", "error", err)
	var pe *ParseError
	if errors.As(err, &pe) {
		a.printDiagnostic(a.stderr, pe)
	} else {
		diagColor.Fprintln(a.stderr, err.Error())
		fmt.Fprintln(a.stderr)
	}
	if err := a.PrintHelp(a.stderr); err != nil {
		a.logger.Error("failed to render help", "error", err)
	}
	a.exitFunc(1)

	return nil
}

func (a *App) printDiagnostic(w io.Writer, pe *ParseError) {
	switch pe.Kind {
	case TooFewArguments:
		diagColor.Fprintln(w, a.tr(messages.MsgTooFewArgumentsKey))
	case TooManyArguments:
		diagColor.Fprintln(w, a.tr(messages.MsgTooManyArgumentsKey, pe.Token))
	case MissingArgumentValue:
		diagColor.Fprintln(w, a.tr(messages.MsgMissingArgumentValueKey))
		a.printArgRows(w, pe.Args())
	case DuplicateArgument:
		diagColor.Fprintln(w, a.tr(messages.MsgDuplicateArgumentKey))
		a.printArgRows(w, pe.Args())
	case RequiredArgumentMissing:
		diagColor.Fprintln(w, a.tr(messages.MsgRequiredArgumentMissingKey))
		a.printArgRows(w, pe.Args())
	}
	fmt.Fprintln(w)
}

func (a *App) printArgRows(w io.Writer, args []*Arg) {
	rows := make([]string, 0, len(args))
	for _, arg := range args {
		rows = append(rows, arg.String())
	}
	argColor.Fprintln(w, strings.Join(rows, "\n"))
}
