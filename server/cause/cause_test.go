package cause

import (
	"testing"

	"github.com/basalt-mc/basalt/server/permission"
	"github.com/basalt-mc/basalt/server/world"
)

func TestCauseRootIsLowestIndex(t *testing.T) {
	first := permission.NewFixed("first", true)
	second := permission.NewFixed("second", true)

	c := New(Context{}, first, second)
	root, ok := c.Root()
	if !ok {
		t.Fatalf("expected root to be present")
	}
	if root != any(first) {
		t.Fatalf("expected root to be the first participant, got %v", root)
	}

	if _, ok := New(Context{}).Root(); ok {
		t.Fatalf("expected empty cause to have no root")
	}
}

func TestFirstReturnsLowestIndexMatch(t *testing.T) {
	a := permission.NewFixed("a", true)
	b := permission.NewFixed("b", false)

	c := New(Context{}, "not a subject", a, b)
	got, ok := First[permission.Subject](c)
	if !ok {
		t.Fatalf("expected to find a subject in the chain")
	}
	if got.Name() != "a" {
		t.Fatalf("expected lowest-index subject %q, got %q", "a", got.Name())
	}

	if _, ok := First[world.Entity](c); ok {
		t.Fatalf("expected no entity in the chain")
	}
}

func TestAllCopiesParticipants(t *testing.T) {
	c := New(Context{}, "a", "b")
	all := c.All()
	all[0] = "mutated"

	root, _ := c.Root()
	if root != any("a") {
		t.Fatalf("mutating the returned slice changed the cause, root is now %v", root)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 participants, got %d", c.Len())
	}
}

func TestFingerprintStableAndKeySensitive(t *testing.T) {
	subject := permission.NewFixed("subject", true)

	plain := New(Context{}, subject, "text")
	same := New(Context{}, permission.NewFixed("other", false), "different text")
	withKey := New(Context{}.WithSubject(subject), subject, "text")

	if plain.Fingerprint() != plain.Fingerprint() {
		t.Fatalf("fingerprint of the same cause is not stable")
	}
	if plain.Fingerprint() != same.Fingerprint() {
		t.Fatalf("causes with the same shape should hash equally")
	}
	if plain.Fingerprint() == withKey.Fingerprint() {
		t.Fatalf("setting a context value should change the fingerprint")
	}
}
