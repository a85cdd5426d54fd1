package chat

import (
	"testing"

	"golang.org/x/text/language"
)

func TestTranslationResolve(t *testing.T) {
	tr := Translate("Hello, %v!").
		With(language.German, "Hallo, %v!").
		With(language.Dutch, "Hallo daar, %v!")

	cases := map[language.Tag]string{
		language.German:             "Hallo, %v!",
		language.MustParse("de-AT"): "Hallo, %v!",
		language.Dutch:              "Hallo daar, %v!",
		language.Japanese:           "Hello, %v!",
	}
	for tag, want := range cases {
		if got := tr.Resolve(tag); got != want {
			t.Fatalf("Resolve(%v) = %q, want %q", tag, got, want)
		}
	}
}

func TestTranslationFallbackWithoutVariants(t *testing.T) {
	tr := Translate("plain %v")
	if got := tr.Resolve(language.German); got != "plain %v" {
		t.Fatalf("expected the fallback format, got %q", got)
	}
	if got := tr.F("value"); got != "plain value" {
		t.Fatalf("expected formatted fallback, got %q", got)
	}
}

func TestTranslationWithDoesNotMutateReceiver(t *testing.T) {
	base := Translate("base %v")
	_ = base.With(language.German, "Basis %v")

	if got := base.Resolve(language.German); got != "base %v" {
		t.Fatalf("expected the original translation to be untouched, got %q", got)
	}
}

func TestTranslationTr(t *testing.T) {
	tr := Translate("Hello, %v!").With(language.German, "Hallo, %v!")
	if got := tr.Tr(language.German, "Welt"); got != "Hallo, Welt!" {
		t.Fatalf("Tr returned %q", got)
	}
}
