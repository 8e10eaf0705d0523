package clargs

import (
	"log/slog"

	"github.com/clargs/clargs/env"
	"github.com/clargs/clargs/i18n"
	"golang.org/x/text/language"
)

// WithArg is a wrapper for AddArg
func WithArg(arg *Arg) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.AddArg(arg)
	}
}

// WithRequiredPositional is a wrapper for UntaggedRequiredArg
func WithRequiredPositional(name string) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.UntaggedRequiredArg(name)
	}
}

// WithOptionalPositional is a wrapper for UntaggedOptionalArg
func WithOptionalPositional(name string) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.UntaggedOptionalArg(name)
	}
}

func WithPrettyName(name string) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.SetPrettyName(name)
	}
}

func WithVersion(version string) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.SetVersion(version)
	}
}

func WithAuthor(author string) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.SetAuthor(author)
	}
}

func WithAbout(about string) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.SetAbout(about)
	}
}

// WithEnvResolver is a wrapper for SetEnvResolver
func WithEnvResolver(resolver env.Resolver) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.SetEnvResolver(resolver)
	}
}

// WithEnvNameConverter is a wrapper for SetEnvNameConverter
func WithEnvNameConverter(converter NameConversionFunc) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.SetEnvNameConverter(converter)
	}
}

// WithLogger is a wrapper for SetLogger
func WithLogger(logger *slog.Logger) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.SetLogger(logger)
	}
}

// WithBundle is a wrapper for SetBundle. Apply it before WithLanguage.
func WithBundle(bundle *i18n.Bundle) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.SetBundle(bundle)
	}
}

// WithLanguage is a wrapper for SetLanguage
func WithLanguage(lang language.Tag) ConfigureAppFunc {
	return func(app *App, err *error) {
		*err = app.SetLanguage(lang)
	}
}

func WithAutoHelp(enabled bool) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.SetAutoHelp(enabled)
	}
}

func WithAutoVersion(enabled bool) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.SetAutoVersion(enabled)
	}
}

// WithRenderer is a wrapper for SetRenderer
func WithRenderer(renderer Renderer) ConfigureAppFunc {
	return func(app *App, err *error) {
		app.SetRenderer(renderer)
	}
}
