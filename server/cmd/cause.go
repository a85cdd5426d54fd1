package cmd

import (
	"github.com/basalt-mc/basalt/server/cause"
	"github.com/basalt-mc/basalt/server/chat"
	"github.com/basalt-mc/basalt/server/permission"
	"github.com/basalt-mc/basalt/server/world"
)

// Cause is the command-invocation view over a cause.Cause. It resolves the
// subject, message receiver, location, rotation and block target that a
// command execution concerns, each through a fixed ordering of candidates.
//
// The accessors are hints: command implementations remain free to inspect the
// underlying chain directly, typically treating its root as the invoker.
// Every accessor is a pure read and never modifies the chain.
type Cause struct {
	chain cause.Cause
}

// NewCause returns the command-invocation view over the cause passed.
func NewCause(c cause.Cause) Cause {
	return Cause{chain: c}
}

// Chain returns the underlying cause of the command invocation.
func (c Cause) Chain() cause.Cause {
	return c.chain
}

// Subject returns the subject that permission checks run against by default.
// Candidates are checked in order: the subject attached to the context, the
// first subject in the participant chain, and finally the server's System
// principal. Note that the subject and the root of the chain may differ;
// commands targeting the invoker should use the root.
func (c Cause) Subject() permission.Subject {
	if s := c.chain.Context().Subject; s != nil {
		return s
	}
	if s, ok := cause.First[permission.Subject](c.chain); ok {
		return s
	}
	return System
}

// MessageReceiver returns the receiver that messages produced by the command
// are sent to by default. Candidates are checked in order: the message target
// attached to the context, the first subscriber in the participant chain, and
// finally the server's System principal.
func (c Cause) MessageReceiver() chat.Subscriber {
	if t := c.chain.Context().MessageTarget; t != nil {
		return t
	}
	if t, ok := cause.First[chat.Subscriber](c.chain); ok {
		return t
	}
	return System
}

// Location returns the location the command invocation is associated with.
// Candidates are checked in order: the location attached to the context, the
// location of the resolved target block, the location of the context's
// message target if it is locatable, and the location of the first locatable
// participant in the chain. The second return value is false if none of the
// candidates produced a location.
func (c Cause) Location() (world.Location, bool) {
	ctx := c.chain.Context()
	if ctx.Location != nil {
		return *ctx.Location, true
	}
	if snap, ok := c.TargetBlock(); ok {
		if loc, ok := snap.Location(); ok {
			return loc, true
		}
	}
	if l, ok := ctx.MessageTarget.(world.Locatable); ok {
		return l.Location(), true
	}
	if l, ok := cause.First[world.Locatable](c.chain); ok {
		return l.Location(), true
	}
	return world.Location{}, false
}

// Rotation returns the rotation the command invocation is associated with.
// Candidates are checked in order: the rotation attached to the context, the
// rotation of the context's message target if it is an entity, and the
// rotation of the first entity in the chain. The second return value is false
// if none of the candidates produced a rotation.
func (c Cause) Rotation() (world.Rotation, bool) {
	ctx := c.chain.Context()
	if ctx.Rotation != nil {
		return *ctx.Rotation, true
	}
	if e, ok := ctx.MessageTarget.(world.Entity); ok {
		return e.Rotation(), true
	}
	if e, ok := cause.First[world.Entity](c.chain); ok {
		return e.Rotation(), true
	}
	return world.Rotation{}, false
}

// TargetBlock returns the block the command invocation acts upon. Candidates
// are checked in order: the block target attached to the context and the
// first block snapshot in the participant chain. The second return value is
// false if neither is present.
func (c Cause) TargetBlock() (world.BlockSnapshot, bool) {
	if snap := c.chain.Context().BlockTarget; snap != nil {
		return *snap, true
	}
	return cause.First[world.BlockSnapshot](c.chain)
}
