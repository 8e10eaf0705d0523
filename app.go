package clargs

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/clargs/clargs/env"
	"github.com/clargs/clargs/i18n"
	"github.com/clargs/clargs/types/orderedmap"
	"golang.org/x/text/language"
)

// App holds the argument declarations of one program together with the
// metadata shown in its help output.
type App struct {
	execName   string
	prettyName string
	version    string
	author     string
	about      string

	args             *orderedmap.OrderedMap[string, *Arg]
	argIDs           map[string]string
	untaggedRequired []string
	untaggedOptional []string
	manualHelp       bool
	manualVersion    bool

	envResolver      env.Resolver
	envNameConverter NameConversionFunc
	stdout           io.Writer
	stderr           io.Writer
	exitFunc         func(code int)
	renderer         Renderer
	logger           *slog.Logger
	bundle           *i18n.Bundle
	lang             language.Tag
	autoHelp         bool
	autoVersion      bool
}

// NewApp creates an App for the executable execName
func NewApp(execName string) *App {
	return &App{
		execName:    execName,
		args:        orderedmap.NewOrderedMap[string, *Arg](),
		argIDs:      make(map[string]string),
		envResolver: &env.OSResolver{},
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		exitFunc:    os.Exit,
		renderer:    &DefaultRenderer{},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		bundle:      i18n.Default(),
		lang:        language.English,
		autoHelp:    true,
		autoVersion: true,
	}
}

// NewAppWith allows initialization of an App using option functions. The caller
// should always test for error on return because App will be nil when an error
// occurs during initialization.
//
// Configuration example:
//
//	app, err := NewAppWith("mytool",
//		WithVersion("1.0.0"),
//		WithArg(NewArg("verbose", WithShortFlag("-v"), WithLongFlag("--verbose"))),
//		WithRequiredPositional("input"))
func NewAppWith(execName string, configs ...ConfigureAppFunc) (*App, error) {
	app := NewApp(execName)

	var err error
	for _, config := range configs {
		config(app, &err)
		if err != nil {
			return nil, err
		}
	}

	return app, nil
}

// SetPrettyName sets the display name used as the help header
func (a *App) SetPrettyName(name string) *App {
	a.prettyName = name
	return a
}

func (a *App) SetVersion(version string) *App {
	a.version = version
	return a
}

func (a *App) SetAuthor(author string) *App {
	a.author = author
	return a
}

func (a *App) SetAbout(about string) *App {
	a.about = about
	return a
}

func (a *App) GetExecName() string {
	return a.execName
}

func (a *App) GetPrettyName() string {
	return a.prettyName
}

func (a *App) GetVersion() string {
	return a.version
}

func (a *App) GetAuthor() string {
	return a.author
}

func (a *App) GetAbout() string {
	return a.about
}

// AddArg registers arg. Declaring an alias equal, ignoring case, to -help,
// --help, -version or --version marks the App as handling help or version itself.
func (a *App) AddArg(arg *Arg) *App {
	a.args.Set(arg.id, arg)
	a.argIDs[arg.name] = arg.id

	if containsFold(helpTokens, arg.short...) || containsFold(helpTokens, arg.long...) {
		a.manualHelp = true
	}
	if containsFold(versionTokens, arg.short...) || containsFold(versionTokens, arg.long...) {
		a.manualVersion = true
	}

	return a
}

// UntaggedRequiredArg declares the next mandatory positional slot
func (a *App) UntaggedRequiredArg(name string) *App {
	a.untaggedRequired = append(a.untaggedRequired, name)
	return a
}

// UntaggedOptionalArg declares the next optional positional slot. Optional
// slots are filled only after every required slot.
func (a *App) UntaggedOptionalArg(name string) *App {
	a.untaggedOptional = append(a.untaggedOptional, name)
	return a
}

// Args returns the declared arguments in registration order
func (a *App) Args() []*Arg {
	return a.args.Values()
}

// GetArg returns the argument registered under name. When several share the
// name the last one registered is returned.
func (a *App) GetArg(name string) (*Arg, bool) {
	id, ok := a.argIDs[name]
	if !ok {
		return nil, false
	}

	return a.args.Get(id)
}

func (a *App) RequiredPositionals() []string {
	return append([]string(nil), a.untaggedRequired...)
}

func (a *App) OptionalPositionals() []string {
	return append([]string(nil), a.untaggedOptional...)
}

// HasManualHelp reports whether a declared alias claims -help or --help
func (a *App) HasManualHelp() bool {
	return a.manualHelp
}

// HasManualVersion reports whether a declared alias claims -version or --version
func (a *App) HasManualVersion() bool {
	return a.manualVersion
}

// SetEnvResolver replaces the environment used for fallback lookups
func (a *App) SetEnvResolver(resolver env.Resolver) *App {
	if resolver == nil {
		resolver = &env.OSResolver{}
	}
	a.envResolver = resolver
	return a
}

// SetEnvNameConverter derives an environment variable name for every argument
// which does not declare one with FromEnv. A nil converter disables this.
func (a *App) SetEnvNameConverter(converter NameConversionFunc) *App {
	a.envNameConverter = converter
	return a
}

func (a *App) SetStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

func (a *App) SetStderr(w io.Writer) *App {
	a.stderr = w
	return a
}

// SetExitFunc replaces os.Exit in Parse
func (a *App) SetExitFunc(exitFunc func(code int)) *App {
	a.exitFunc = exitFunc
	return a
}

func (a *App) SetRenderer(renderer Renderer) *App {
	if renderer == nil {
		renderer = &DefaultRenderer{}
	}
	a.renderer = renderer
	return a
}

// SetLogger sets the logger receiving parse traces at debug level
func (a *App) SetLogger(logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	a.logger = logger
	return a
}

// SetBundle replaces the translations used for diagnostics and help
func (a *App) SetBundle(bundle *i18n.Bundle) *App {
	if bundle == nil {
		bundle = i18n.Default()
	}
	a.bundle = bundle
	return a
}

// SetLanguage selects the language of diagnostics and help. Regional variants
// fall back to their base language; languages the bundle does not carry are
// rejected.
func (a *App) SetLanguage(lang language.Tag) error {
	matched := a.bundle.MatchLanguage(lang)
	want, _ := lang.Base()
	got, _ := matched.Base()
	if want != got {
		return fmt.Errorf("%w: %s", i18n.ErrLanguageNotFound, lang)
	}
	a.lang = matched

	return nil
}

func (a *App) GetLanguage() language.Tag {
	return a.lang
}

// SetAutoHelp controls whether Parse answers -help and --help itself
func (a *App) SetAutoHelp(enabled bool) *App {
	a.autoHelp = enabled
	return a
}

// SetAutoVersion controls whether Parse answers -version and --version itself
func (a *App) SetAutoVersion(enabled bool) *App {
	a.autoVersion = enabled
	return a
}

// PrintHelp renders the help text to w
func (a *App) PrintHelp(w io.Writer) error {
	return a.renderer.Render(w, a)
}

func (a *App) tr(key string, args ...interface{}) string {
	return a.bundle.TL(a.lang, key, args...)
}

// envName returns the effective environment variable name of arg
func (a *App) envName(arg *Arg) string {
	if arg.env != "" {
		return arg.env
	}
	if a.envNameConverter != nil {
		return a.envNameConverter(arg.name)
	}

	return ""
}
