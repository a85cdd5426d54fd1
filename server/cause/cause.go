// Package cause models the causal chain of a triggering operation: an ordered
// sequence of participants (who or what caused it) together with a typed side
// context. Causes are assembled once per operation by the host before events
// are dispatched and are read-only afterwards.
package cause

import (
	"reflect"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Cause is an immutable ordered chain of participants with an attached
// Context. The first participant is the root cause of the operation; later
// participants were added as the operation propagated. The zero Cause is
// valid and reports absence for every lookup.
type Cause struct {
	participants []any
	ctx          Context
}

// New returns a Cause holding the participants passed, in order, with the
// context attached. The participant slice is copied.
func New(ctx Context, participants ...any) Cause {
	return Cause{participants: slices.Clone(participants), ctx: ctx}
}

// Root returns the first participant of the chain, the root cause of the
// operation. The second return value is false for an empty chain.
func (c Cause) Root() (any, bool) {
	if len(c.participants) == 0 {
		return nil, false
	}
	return c.participants[0], true
}

// All returns a copy of the participant chain in causal order.
func (c Cause) All() []any {
	return slices.Clone(c.participants)
}

// Len returns the number of participants in the chain.
func (c Cause) Len() int {
	return len(c.participants)
}

// Context returns the typed side context attached to the cause.
func (c Cause) Context() Context {
	return c.ctx
}

// First returns the participant with the lowest index that is a T. The second
// return value is false if no participant is a T.
func First[T any](c Cause) (T, bool) {
	for _, p := range c.participants {
		if v, ok := p.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Fingerprint returns a stable hash identifying the shape of the cause: the
// dynamic types of its participants in order and the set of context values
// present. Two causes built from the same kinds of participants and context
// hash equally, which makes the fingerprint suitable for correlating log
// lines emitted while one operation is dispatched.
func (c Cause) Fingerprint() uint64 {
	d := xxhash.New()
	for _, p := range c.participants {
		if p == nil {
			_, _ = d.WriteString("<nil>;")
			continue
		}
		_, _ = d.WriteString(reflect.TypeOf(p).String())
		_, _ = d.WriteString(";")
	}
	_, _ = d.WriteString("|")
	for _, key := range c.ctx.keys() {
		_, _ = d.WriteString(key)
		_, _ = d.WriteString(";")
	}
	return d.Sum64()
}
