package clargs

import (
	"io"
	"strings"

	"github.com/clargs/clargs/internal/messages"
	"github.com/clargs/clargs/internal/util"
)

// DefaultRenderer prints a usage banner followed by an options table with one
// row per declared Arg. Help text is wrapped to the terminal width, or to
// util.DefaultWidth columns when the output is not a terminal.
type DefaultRenderer struct {
	// Width overrides terminal detection when greater than zero
	Width int
	// Terminal is queried for the output width; nil uses golang.org/x/term
	Terminal util.Terminal
}

// Render writes the help text of app to w
func (r *DefaultRenderer) Render(w io.Writer, app *App) error {
	var sb strings.Builder

	sb.WriteString(r.Header(app))
	sb.WriteByte('\n')

	var meta string
	if app.version != "" {
		meta += "  " + app.tr(messages.MsgVersionKey, app.version)
	}
	if app.author != "" {
		meta += "\t" + app.tr(messages.MsgAuthorKey, app.author)
	}
	sb.WriteString(meta)
	sb.WriteByte('\n')

	if app.about != "" {
		sb.WriteString(app.about)
		sb.WriteString("\n\n")
	}

	sb.WriteString(app.tr(messages.MsgUsageKey))
	sb.WriteString("\n\n")
	sb.WriteString(r.Usage(app))
	sb.WriteByte('\n')

	args := app.Args()
	if len(args) > 0 {
		sb.WriteByte('\n')
		sb.WriteString(app.tr(messages.MsgOptionsKey))
		sb.WriteByte('\n')
	}

	width := r.width(w)
	for _, arg := range args {
		sb.WriteString(r.FlagUsage(app, arg, width))
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Header returns the pretty name of app, or its executable name when unset
func (r *DefaultRenderer) Header(app *App) string {
	if app.prettyName != "" {
		return app.prettyName
	}

	return app.execName
}

// Usage returns the synopsis line: the executable, required positionals,
// optional positionals marked with * and an options marker when arguments
// are declared.
func (r *DefaultRenderer) Usage(app *App) string {
	parts := []string{app.execName}
	parts = append(parts, app.untaggedRequired...)
	for _, name := range app.untaggedOptional {
		parts = append(parts, name+"*")
	}
	if app.args.Len() > 0 {
		parts = append(parts, app.tr(messages.MsgOptionsTailKey))
	}

	return strings.Join(parts, " ")
}

// FlagUsage returns the options-table row of arg. Help lines beyond the first
// are indented to the help column.
func (r *DefaultRenderer) FlagUsage(app *App, arg *Arg, width int) string {
	var prefix strings.Builder
	if len(arg.short) > 0 {
		prefix.WriteString("  ")
		prefix.WriteString(strings.Join(arg.short, ","))
	}
	prefix.WriteByte('\t')
	prefix.WriteString(strings.Join(arg.long, ","))
	prefix.WriteByte('\t')
	if arg.acceptsValue {
		prefix.WriteString(app.tr(messages.MsgValueKey))
		prefix.WriteByte('\t')
	}

	help := util.JoinNonEmpty(" ", arg.help, r.annotations(app, arg))
	// help starts after at most three tab stops
	lines := util.Wrap(help, width-24)
	if len(lines) == 0 {
		return prefix.String()
	}

	return prefix.String() + strings.Join(lines, "\n\t\t\t")
}

func (r *DefaultRenderer) annotations(app *App, arg *Arg) string {
	var notes []string
	if arg.required {
		notes = append(notes, app.tr(messages.MsgRequiredKey))
	}
	if def, ok := arg.Default(); ok && def != "" {
		notes = append(notes, app.tr(messages.MsgDefaultsToKey, def))
	}
	if name := app.envName(arg); name != "" {
		notes = append(notes, app.tr(messages.MsgEnvKey, name))
	}

	return strings.Join(notes, " ")
}

func (r *DefaultRenderer) width(w io.Writer) int {
	if r.Width > 0 {
		return r.Width
	}

	return util.TerminalWidth(w, r.Terminal)
}
