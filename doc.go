// Package clargs parses command-line arguments against a declarative set of
// argument definitions.
//
// An App collects Arg declarations, each with short and long aliases, an
// optional value, a default, an environment variable and a required marker,
// together with named positional slots. ParseArgs resolves a token stream into
// Values or returns a *ParseError; Parse does the same and handles help,
// version and failures the way a command-line program expects.
//
//	app := clargs.NewApp("tool").
//		UntaggedRequiredArg("input").
//		AddArg(clargs.NewArg("verbose").AddShort("-v").AddLong("--verbose")).
//		AddArg(clargs.NewArg("level").AddLong("--level").TakesValue().SetDefault("info"))
//
//	values := app.Parse(os.Args)
//	if values.Has("verbose") {
//		// ...
//	}
package clargs
