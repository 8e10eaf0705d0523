package i18n

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestTrError(t *testing.T) {
	b := NewEmptyBundle()
	require.NoError(t, b.AddLanguage(language.English, map[string]string{"test.error": "bad %s"}))
	require.NoError(t, b.AddLanguage(language.German, map[string]string{"test.error": "schlecht %s"}))

	base := NewError("test.error")
	withArgs := base.WithArgs("input")
	wrapped := withArgs.Wrap(errors.New("inner"))

	t.Run("format uses the provider", func(t *testing.T) {
		assert.Equal(t, "bad input", withArgs.Translate(NewBundleMessageProvider(b)))
		assert.Equal(t, "schlecht input", withArgs.Translate(NewLanguageMessageProvider(b, language.German)))
		assert.Equal(t, "bad input: inner", wrapped.Translate(NewBundleMessageProvider(b)))
	})

	t.Run("unknown key formats as the key", func(t *testing.T) {
		assert.Equal(t, "test.error", base.Error())
	})

	t.Run("copies match the sentinel", func(t *testing.T) {
		assert.True(t, errors.Is(withArgs, base))
		assert.True(t, errors.Is(wrapped, base))
		assert.False(t, errors.Is(wrapped, NewError("test.error")))
		assert.Equal(t, []interface{}{"input"}, wrapped.Args())
		assert.Equal(t, "test.error", wrapped.Key())
		assert.EqualError(t, wrapped.Unwrap(), "inner")
	})
}

func TestBundleMessageProvider_Nil(t *testing.T) {
	var p *BundleMessageProvider
	assert.Equal(t, "k", p.GetMessage("k"))
	assert.Equal(t, "k", NewBundleMessageProvider(nil).GetMessage("k"))
}
