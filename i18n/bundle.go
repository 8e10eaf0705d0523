// Package i18n provides translated messages for diagnostics and help output.
//
// A Bundle holds one flat key/message table per language. The built-in bundle
// returned by Default carries English, German and French translations; callers
// can extend a bundle of their own with AddLanguage or LoadFromString.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrLanguageNotFound                   = errors.New("language not found")
	ErrExtraKey                           = errors.New("extra key")
	ErrMissingKey                         = errors.New("missing key")
)

type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
	matcher      language.Matcher
}

var (
	defaultBundleOnce sync.Once
	defaultBundle     *Bundle
)

// Default returns the shared built-in bundle. It must not be modified; use
// NewBundle to obtain a private copy that can be extended.
func Default() *Bundle {
	defaultBundleOnce.Do(func() {
		var err error
		defaultBundle, err = NewBundle()
		if err != nil {
			panic("failed to load embedded locales: " + err.Error())
		}
	})

	return defaultBundle
}

// NewBundle returns a new bundle loaded with the built-in translations
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
		matcher:      language.NewMatcher([]language.Tag{language.English}),
	}
}

// NewBundleWithFS loads every <lang>.json file found in dir. The English file is
// loaded first and every other language is validated against it.
func NewBundleWithFS(fsys fs.FS, dir string) (*Bundle, error) {
	b := NewEmptyBundle()
	if err := b.loadFS(fsys, dir); err != nil {
		return nil, err
	}
	if _, exists := b.translations[b.defaultLang]; !exists {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	return b, nil
}

// T returns the translation for the given key in the default language
func (b *Bundle) T(key string, args ...interface{}) string {
	return b.TL(b.GetDefaultLanguage(), key, args...)
}

// TL returns the translation for the given language and key. Unknown languages
// are matched to the closest supported one.
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if p, exists := b.printers[b.match(lang)]; exists {
		return p.Sprintf(key, args...)
	}
	if p, exists := b.printers[b.defaultLang]; exists {
		return p.Sprintf(key, args...)
	}

	return key
}

// Message returns the raw, unformatted message for key in lang
func (b *Bundle) Message(lang language.Tag, key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if msgs, ok := b.translations[b.match(lang)]; ok {
		if msg, ok := msgs[key]; ok {
			return msg, true
		}
	}
	msg, ok := b.translations[b.defaultLang][key]

	return msg, ok
}

// AddLanguage adds a new language to the bundle or merges into an existing one.
// A new language other than the default must define exactly the default's keys.
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	original, hadOriginal := b.translations[lang]
	merged := make(map[string]string, len(original)+len(translations))
	for k, v := range original {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}

	if !hadOriginal && lang != b.defaultLang {
		if errs := b.validate(lang, merged); len(errs) > 0 {
			return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, lang, errs)
		}
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFailedToSetString, key, err)
		}
	}

	b.translations[lang] = merged
	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	b.updateMatcher()

	return nil
}

// LoadFromString loads translations from a JSON object for a specific language
func (b *Bundle) LoadFromString(lang language.Tag, jsonStr string) error {
	var translations map[string]string
	if err := json.Unmarshal([]byte(jsonStr), &translations); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return b.AddLanguage(lang, translations)
}

// HasLanguage checks if a language is supported
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations[lang]

	return exists
}

// HasKey checks if a key exists in a language
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations[lang][key]

	return exists
}

// Languages returns the supported languages sorted by tag
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	langs := make([]language.Tag, 0, len(b.translations))
	for lang := range b.translations {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		return langs[i].String() < langs[j].String()
	})

	return langs
}

// MatchLanguage returns the supported language closest to requested
func (b *Bundle) MatchLanguage(requested language.Tag) language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.match(requested)
}

// SetDefaultLanguage sets the language used by T. The language, or a close
// match, must already be loaded.
func (b *Bundle) SetDefaultLanguage(lang language.Tag) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	matched := b.match(lang)
	if _, exists := b.translations[matched]; !exists {
		return fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)
	}
	b.defaultLang = matched
	b.updateMatcher()

	return nil
}

func (b *Bundle) GetDefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.defaultLang
}

// match must be called with b.mu held
func (b *Bundle) match(lang language.Tag) language.Tag {
	if _, exists := b.translations[lang]; exists {
		return lang
	}
	_, idx, conf := b.matcher.Match(lang)
	if conf == language.No {
		return b.defaultLang
	}
	supported := b.supported()
	if idx < len(supported) {
		return supported[idx]
	}

	return b.defaultLang
}

// supported lists the loaded languages with the default first. The matcher is
// built from the same order so that its indexes line up.
func (b *Bundle) supported() []language.Tag {
	tags := []language.Tag{b.defaultLang}
	others := make([]language.Tag, 0, len(b.translations))
	for lang := range b.translations {
		if lang != b.defaultLang {
			others = append(others, lang)
		}
	}
	sort.Slice(others, func(i, j int) bool {
		return others[i].String() < others[j].String()
	})

	return append(tags, others...)
}

func (b *Bundle) updateMatcher() {
	b.matcher = language.NewMatcher(b.supported())
}

func (b *Bundle) validate(lang language.Tag, translations map[string]string) []error {
	var errs []error
	if len(translations) == 0 {
		return append(errs, fmt.Errorf("%w: %s", ErrEmptyTranslations, lang))
	}

	reference, exists := b.translations[b.defaultLang]
	if !exists {
		return nil
	}
	for key := range reference {
		if _, exists := translations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrMissingKey, lang, key))
		}
	}
	for key := range translations {
		if _, exists := reference[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrExtraKey, lang, key))
		}
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })

	return errs
}

func (b *Bundle) loadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}

	// default language first so that the others can be validated against it
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.HasPrefix(entries[i].Name(), b.defaultLang.String()+".") &&
			!strings.HasPrefix(entries[j].Name(), b.defaultLang.String()+".")
	})

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}
		lang, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		if err := b.LoadFromString(lang, string(data)); err != nil {
			return err
		}
	}

	return nil
}
