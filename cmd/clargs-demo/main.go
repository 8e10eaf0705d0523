package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/clargs/clargs"
	"golang.org/x/text/language"
)

func main() {
	app, err := clargs.NewAppWith("clargs-demo",
		clargs.WithPrettyName("clargs demo"),
		clargs.WithVersion("1.0.0"),
		clargs.WithAbout("Copies a file, showing how arguments are declared and resolved"),
		clargs.WithRequiredPositional("source"),
		clargs.WithOptionalPositional("destination"),
		clargs.WithEnvNameConverter(clargs.EnvNameWithPrefix("clargs_demo")),
		clargs.WithArg(clargs.NewArg("verbose",
			clargs.WithShortFlag("-v"),
			clargs.WithLongFlag("--verbose"),
			clargs.WithHelp("Show detailed progress"))),
		clargs.WithArg(clargs.NewArg("mode",
			clargs.WithShortFlag("-m"),
			clargs.WithLongFlag("--mode"),
			clargs.WithValue(),
			clargs.WithDefaultValue("copy"),
			clargs.WithHelp("copy or move"))),
		clargs.WithArg(clargs.NewArg("token",
			clargs.WithLongFlag("--token"),
			clargs.WithValue(),
			clargs.WithEnv("DEMO_TOKEN"),
			clargs.WithRequired(true),
			clargs.WithHelp("Access token"))),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if lang, ok := os.LookupEnv("CLARGS_DEMO_LANG"); ok {
		if tag, err := language.Parse(lang); err == nil {
			if err := app.SetLanguage(tag); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
		}
	}

	values := app.Parse(os.Args)

	level := slog.LevelInfo
	if values.Has("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	logger.Debug("parsed arguments", "path", values.Path(), "keys", values.Keys())
	dest := values.GetOrDefault("destination", ".")
	fmt.Printf("%s %s -> %s\n", values["mode"], values["source"], dest)
}
