package clargs

import (
	"errors"
	"testing"

	"github.com/clargs/clargs/env"
	"github.com/clargs/clargs/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *App {
	return NewApp("Test").
		SetPrettyName("Test App").
		SetVersion("1.0").
		SetAbout("A test app to make sure everything is working for argument parsing").
		SetAuthor("Test Author, test@example.com").
		UntaggedRequiredArg("first_input").
		UntaggedOptionalArg("optional_second_input").
		AddArg(NewArg("TestArg").AddShort("-vv").Describe("Help text for this flag")).
		AddArg(NewArg("TestArg2").AddShort("-f").AddLong("-flag")).
		AddArg(NewArg("TestArg3").
			AddShort("-1").AddShort("-2").AddShort("-3").
			AddLong("-one").AddLong("-two").
			Describe("Help info here!")).
		AddArg(NewArg("HasValue").
			AddShort("-v").AddLong("-value").
			TakesValue().
			Describe("A command line option that accepts a value")).
		AddArg(NewArg("HasDefault").
			AddShort("-d").AddLong("--default").
			TakesValue().
			SetDefault("Default Value").
			Describe("Default Value Parameter")).
		SetEnvResolver(env.MapResolver{})
}

func requireParseError(t *testing.T, err error, kind ErrorKind) *ParseError {
	t.Helper()
	require.Error(t, err)
	var pe *ParseError
	require.True(t, errors.As(err, &pe), "expected *ParseError, got %T", err)
	assert.Equal(t, kind, pe.Kind)

	return pe
}

func TestParseArgs_Positionals(t *testing.T) {
	app := newTestApp()

	values, err := app.ParseArgs([]string{"Program Path", "First Required Input", "Optional Input"})
	require.NoError(t, err)

	assert.Equal(t, Values{
		PathKey:                 "Program Path",
		"first_input":           "First Required Input",
		"optional_second_input": "Optional Input",
		"HasDefault":            "Default Value",
	}, values)
}

func TestParseArgs_RequiredAndFlag(t *testing.T) {
	app := NewApp("prog").
		UntaggedRequiredArg("first_input").
		UntaggedOptionalArg("second_input").
		AddArg(NewArg("TestArg").AddShort("-vv"))

	values, err := app.ParseArgs([]string{"prog", "hello", "-vv"})
	require.NoError(t, err)

	assert.Equal(t, Values{PathKey: "prog", "first_input": "hello", "TestArg": "true"}, values)
	assert.False(t, values.Has("second_input"))
}

func TestParseArgs_OnlyPositionals(t *testing.T) {
	app := NewApp("prog").
		UntaggedRequiredArg("a").
		UntaggedRequiredArg("b").
		UntaggedOptionalArg("c")

	values, err := app.ParseArgs([]string{"prog", "1", "2"})
	require.NoError(t, err)
	assert.Equal(t, Values{PathKey: "prog", "a": "1", "b": "2"}, values)
}

func TestParseArgs_DefaultValue(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  string
	}{
		{"not supplied", []string{"prog", "req"}, "Default Value"},
		{"supplied without value", []string{"prog", "req", "--default"}, "Default Value"},
		{"supplied with value", []string{"prog", "req", "--default", "Custom"}, "Custom"},
		{"followed by another flag", []string{"prog", "req", "-d", "-vv"}, "Default Value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := newTestApp().ParseArgs(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, values["HasDefault"])
		})
	}
}

func TestParseArgs_ValueLookahead(t *testing.T) {
	t.Run("value flag followed by a flag does not consume it", func(t *testing.T) {
		_, err := newTestApp().ParseArgs([]string{"prog", "req", "-v", "-f"})
		pe := requireParseError(t, err, MissingArgumentValue)
		assert.Equal(t, []string{"HasValue"}, pe.Names)
		assert.Equal(t, "-v", pe.Token)
		assert.True(t, errors.Is(err, errs.ErrMissingArgumentValue))
	})

	t.Run("value flag as last token", func(t *testing.T) {
		_, err := newTestApp().ParseArgs([]string{"prog", "req", "-value"})
		pe := requireParseError(t, err, MissingArgumentValue)
		assert.Equal(t, []string{"HasValue"}, pe.Names)
	})

	t.Run("value is consumed and not treated as positional", func(t *testing.T) {
		values, err := newTestApp().ParseArgs([]string{"prog", "-v", "val", "req"})
		require.NoError(t, err)
		assert.Equal(t, "val", values["HasValue"])
		assert.Equal(t, "req", values["first_input"])
		assert.False(t, values.Has("optional_second_input"))
	})

	t.Run("undeclared dash token is a valid value", func(t *testing.T) {
		values, err := newTestApp().ParseArgs([]string{"prog", "req", "-v", "-x"})
		require.NoError(t, err)
		assert.Equal(t, "-x", values["HasValue"])
	})
}

func TestParseArgs_Duplicate(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  string
	}{
		{"same alias twice", []string{"prog", "req", "-vv", "-vv"}, "TestArg"},
		{"short then long", []string{"prog", "req", "-1", "-one"}, "TestArg3"},
		{"different shorts", []string{"prog", "-2", "req", "-3"}, "TestArg3"},
		{"value flag", []string{"prog", "req", "-v", "a", "-value", "b"}, "HasValue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestApp().ParseArgs(tt.input)
			pe := requireParseError(t, err, DuplicateArgument)
			assert.Equal(t, []string{tt.want}, pe.Names)
			assert.True(t, errors.Is(err, errs.ErrDuplicateArgument))
		})
	}
}

func TestParseArgs_TooMany(t *testing.T) {
	_, err := newTestApp().ParseArgs([]string{"prog", "one", "two", "three"})
	pe := requireParseError(t, err, TooManyArguments)
	assert.Equal(t, "three", pe.Token)
	assert.True(t, errors.Is(err, errs.ErrTooManyArguments))
	assert.Contains(t, err.Error(), "three")
}

func TestParseArgs_TooFew(t *testing.T) {
	t.Run("no tokens after path", func(t *testing.T) {
		_, err := newTestApp().ParseArgs([]string{"prog"})
		requireParseError(t, err, TooFewArguments)
		assert.True(t, errors.Is(err, errs.ErrTooFewArguments))
	})

	t.Run("one of two required", func(t *testing.T) {
		app := NewApp("prog").UntaggedRequiredArg("a").UntaggedRequiredArg("b")
		_, err := app.ParseArgs([]string{"prog", "x"})
		requireParseError(t, err, TooFewArguments)
	})

	t.Run("flags do not fill positionals", func(t *testing.T) {
		_, err := newTestApp().ParseArgs([]string{"prog", "-vv", "-f"})
		requireParseError(t, err, TooFewArguments)
	})
}

func TestParseArgs_EmptyStream(t *testing.T) {
	app := NewApp("prog").AddArg(NewArg("opt").AddLong("--opt").SetDefault("x"))

	values, err := app.ParseArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultPath, values.Path())
	assert.Equal(t, "x", values["opt"])
}

func TestParseArgs_RequiredMissing(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		app := NewApp("prog").
			AddArg(NewArg("token").AddLong("--token").TakesValue().Require()).
			SetEnvResolver(env.MapResolver{})

		_, err := app.ParseArgs([]string{"prog"})
		pe := requireParseError(t, err, RequiredArgumentMissing)
		assert.Equal(t, []string{"token"}, pe.Names)
		assert.True(t, errors.Is(err, errs.ErrRequiredArgumentMissing))
	})

	t.Run("all offenders in declaration order", func(t *testing.T) {
		app := NewApp("prog").
			AddArg(NewArg("b").AddLong("--b").Require()).
			AddArg(NewArg("opt").AddLong("--opt")).
			AddArg(NewArg("a").AddLong("--a").Require()).
			AddArg(NewArg("c").AddLong("--c").Require()).
			SetEnvResolver(env.MapResolver{})

		_, err := app.ParseArgs([]string{"prog", "--a"})
		pe := requireParseError(t, err, RequiredArgumentMissing)
		assert.Equal(t, []string{"b", "c"}, pe.Names)
		require.Len(t, pe.Args(), 2)
		assert.Equal(t, "b", pe.Args()[0].Name())
	})

	t.Run("required flag without aliases", func(t *testing.T) {
		app := NewApp("prog").
			AddArg(NewArg("hidden").Require()).
			SetEnvResolver(env.MapResolver{})

		_, err := app.ParseArgs([]string{"prog"})
		pe := requireParseError(t, err, RequiredArgumentMissing)
		assert.Equal(t, []string{"hidden"}, pe.Names)
	})

	t.Run("positional errors take precedence", func(t *testing.T) {
		app := NewApp("prog").
			UntaggedRequiredArg("in").
			AddArg(NewArg("r").AddLong("--r").Require())

		_, err := app.ParseArgs([]string{"prog"})
		requireParseError(t, err, TooFewArguments)
	})
}

func TestParseArgs_Environment(t *testing.T) {
	newApp := func(resolver env.Resolver) *App {
		return NewApp("prog").
			AddArg(NewArg("token").AddLong("--token").TakesValue().FromEnv("APP_TOKEN").Require()).
			AddArg(NewArg("level").AddLong("--level").TakesValue().FromEnv("APP_LEVEL").SetDefault("info")).
			AddArg(NewArg("debug").AddLong("--debug").FromEnv("APP_DEBUG")).
			SetEnvResolver(resolver)
	}

	t.Run("presence satisfies required", func(t *testing.T) {
		values, err := newApp(env.MapResolver{"APP_TOKEN": ""}).ParseArgs([]string{"prog"})
		require.NoError(t, err)
		assert.Equal(t, TrueValue, values["token"], "variable content is ignored")
		assert.Equal(t, "info", values["level"])
		assert.False(t, values.Has("debug"))
	})

	t.Run("present variable binds default", func(t *testing.T) {
		values, err := newApp(env.MapResolver{"APP_TOKEN": "x", "APP_LEVEL": "warn", "APP_DEBUG": "0"}).
			ParseArgs([]string{"prog"})
		require.NoError(t, err)
		assert.Equal(t, "info", values["level"])
		assert.Equal(t, TrueValue, values["debug"])
	})

	t.Run("command line wins over environment", func(t *testing.T) {
		values, err := newApp(env.MapResolver{"APP_TOKEN": "x"}).
			ParseArgs([]string{"prog", "--token", "secret"})
		require.NoError(t, err)
		assert.Equal(t, "secret", values["token"])
	})

	t.Run("absent variable", func(t *testing.T) {
		_, err := newApp(env.MapResolver{"OTHER": "1"}).ParseArgs([]string{"prog"})
		pe := requireParseError(t, err, RequiredArgumentMissing)
		assert.Equal(t, []string{"token"}, pe.Names)
	})

	t.Run("name converter", func(t *testing.T) {
		app := NewApp("prog").
			AddArg(NewArg("logLevel").AddLong("--log-level").TakesValue().Require()).
			AddArg(NewArg("explicit").FromEnv("EXPLICIT").Require()).
			SetEnvNameConverter(EnvNameWithPrefix("myapp")).
			SetEnvResolver(env.MapResolver{"MYAPP_LOG_LEVEL": "", "EXPLICIT": ""})

		values, err := app.ParseArgs([]string{"prog"})
		require.NoError(t, err)
		assert.Equal(t, TrueValue, values["logLevel"])
		assert.Equal(t, TrueValue, values["explicit"])
	})

	t.Run("process environment", func(t *testing.T) {
		t.Setenv("CLARGS_PARSER_TEST_TOKEN", "")
		app := NewApp("prog").
			AddArg(NewArg("token").FromEnv("CLARGS_PARSER_TEST_TOKEN").Require())

		values, err := app.ParseArgs([]string{"prog"})
		require.NoError(t, err)
		assert.Equal(t, TrueValue, values["token"])
	})
}

func TestParseArgs_NoStateLeak(t *testing.T) {
	app := newTestApp()

	first, err := app.ParseArgs([]string{"prog", "req", "-vv", "-1"})
	require.NoError(t, err)
	assert.Equal(t, TrueValue, first["TestArg"])

	second, err := app.ParseArgs([]string{"prog", "req", "-vv", "-one"})
	require.NoError(t, err, "completion from the previous call must not carry over")
	assert.Equal(t, TrueValue, second["TestArg3"])

	third, err := app.ParseArgs([]string{"prog", "other"})
	require.NoError(t, err)
	assert.False(t, third.Has("TestArg"))
	assert.Equal(t, "other", third["first_input"])
}

func TestParseArgs_DeclarationsUntouched(t *testing.T) {
	arg := NewArg("r").AddLong("--r").TakesValue().Require()
	app := NewApp("prog").AddArg(arg).SetEnvResolver(env.MapResolver{})

	_, err := app.ParseArgs([]string{"prog", "--r", "x"})
	require.NoError(t, err)

	assert.True(t, arg.IsRequired())
	assert.Equal(t, []string{"--r"}, arg.Longs())
	_, err = app.ParseArgs([]string{"prog"})
	requireParseError(t, err, RequiredArgumentMissing)
}

func TestParseArgs_Concurrent(t *testing.T) {
	app := newTestApp()
	done := make(chan error)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := app.ParseArgs([]string{"prog", "req", "-vv", "-v", "x"})
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-done)
	}
}

func TestParseArgs_CaseSensitiveAliases(t *testing.T) {
	values, err := newTestApp().ParseArgs([]string{"prog", "-VV"})
	require.NoError(t, err)
	assert.Equal(t, "-VV", values["first_input"])
	assert.False(t, values.Has("TestArg"))
}

func TestParseString(t *testing.T) {
	t.Run("quoted words", func(t *testing.T) {
		values, err := newTestApp().ParseString(`prog "first input" --default "custom value"`)
		require.NoError(t, err)
		assert.Equal(t, "prog", values.Path())
		assert.Equal(t, "first input", values["first_input"])
		assert.Equal(t, "custom value", values["HasDefault"])
	})

	t.Run("unterminated quote", func(t *testing.T) {
		_, err := newTestApp().ParseString(`prog "unterminated`)
		assert.Error(t, err)
	})

	t.Run("empty string", func(t *testing.T) {
		values, err := NewApp("prog").ParseString("")
		require.NoError(t, err)
		assert.Equal(t, DefaultPath, values.Path())
	})
}

func TestApp_Requests(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"path only", []string{"--help"}, false},
		{"positional slot", []string{"prog", "--help"}, true},
		{"after flag", []string{"prog", "-vv", "-HELP"}, true},
		{"value of a value flag", []string{"prog", "-v", "--help"}, false},
		{"value flag followed by declared flag", []string{"prog", "-v", "-vv", "--help"}, true},
		{"after consumed value", []string{"prog", "-d", "x", "-help"}, true},
		{"absent", []string{"prog", "a", "b"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, app.requests(tt.args, helpTokens))
		})
	}
}
