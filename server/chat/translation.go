package chat

import (
	"fmt"

	"golang.org/x/text/language"
)

// Translation is a format string with per-language variants. The zero value is
// unusable; create translations with Translate.
type Translation struct {
	fallback string
	tags     []language.Tag
	formats  map[language.Tag]string
}

// Translate returns a Translation with the fallback format passed. The
// fallback is used when no registered language matches the requested one.
func Translate(fallback string) Translation {
	return Translation{fallback: fallback}
}

// With returns a copy of the translation with a format registered for the
// language tag passed. Registering the same tag twice replaces the format.
func (t Translation) With(tag language.Tag, format string) Translation {
	formats := make(map[language.Tag]string, len(t.formats)+1)
	for k, v := range t.formats {
		formats[k] = v
	}
	tags := t.tags
	if _, ok := t.formats[tag]; !ok {
		tags = append(append([]language.Tag(nil), t.tags...), tag)
	}
	formats[tag] = format
	return Translation{fallback: t.fallback, tags: tags, formats: formats}
}

// Resolve returns the format string best matching the language tag passed,
// falling back to the fallback format when nothing matches well enough.
func (t Translation) Resolve(tag language.Tag) string {
	if len(t.tags) == 0 {
		return t.fallback
	}
	matcher := language.NewMatcher(t.tags)
	matched, _, confidence := matcher.Match(tag)
	if confidence == language.No {
		return t.fallback
	}
	// The matcher may return a more specific tag than was registered; walk up
	// to the registered parent if needed.
	for {
		if format, ok := t.formats[matched]; ok {
			return format
		}
		if matched == language.Und {
			return t.fallback
		}
		matched = matched.Parent()
	}
}

// F formats the fallback variant of the translation with the arguments passed.
func (t Translation) F(a ...any) string {
	return fmt.Sprintf(t.fallback, a...)
}

// Tr formats the variant best matching the language tag passed with the
// arguments given.
func (t Translation) Tr(tag language.Tag, a ...any) string {
	return fmt.Sprintf(t.Resolve(tag), a...)
}
