package i18n

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// TranslatableError represents an error whose message is looked up by key
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	Translate(provider MessageProvider) string
	Is(target error) bool
}

// MessageProvider returns the raw message format for a key
type MessageProvider interface {
	GetMessage(key string) string
}

// BundleMessageProvider implements MessageProvider for one language of a Bundle
type BundleMessageProvider struct {
	bundle *Bundle
	lang   language.Tag
}

// NewBundleMessageProvider returns a provider answering in the bundle's default language
func NewBundleMessageProvider(bundle *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle, lang: language.Und}
}

// NewLanguageMessageProvider returns a provider answering in lang, or its closest match
func NewLanguageMessageProvider(bundle *Bundle, lang language.Tag) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle, lang: lang}
}

// GetMessage returns the message for key, or key itself when it is unknown
func (p *BundleMessageProvider) GetMessage(key string) string {
	if p == nil || p.bundle == nil {
		return key
	}
	lang := p.lang
	if lang == language.Und {
		lang = p.bundle.GetDefaultLanguage()
	}
	if msg, ok := p.bundle.Message(lang, key); ok {
		return msg
	}

	return key
}

// TrError is a translatable error with optional format arguments and an
// optional wrapped cause. Copies made by WithArgs and Wrap share the sentinel
// of the error they were made from, so errors.Is matches them against it.
type TrError struct {
	sentinel error
	key      string
	args     []interface{}
	wrapped  error
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
	}
}

// Error formats the error in the built-in bundle's default language
func (e *TrError) Error() string {
	return e.Translate(NewBundleMessageProvider(Default()))
}

// Translate renders the error using the messages of provider
func (e *TrError) Translate(provider MessageProvider) string {
	msg := provider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     args,
		wrapped:  e.wrapped,
	}
}

// Wrap returns a copy of the error wrapping err
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     e.args,
		wrapped:  err,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}
