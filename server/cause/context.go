package cause

import (
	"github.com/basalt-mc/basalt/server/chat"
	"github.com/basalt-mc/basalt/server/permission"
	"github.com/basalt-mc/basalt/server/world"
)

// Context carries a fixed set of typed values attached to a Cause beyond the
// participant chain itself. Every field is optional: a nil field means the
// value was not attached. Unlike the participant chain, the context has no
// ordering.
type Context struct {
	// Subject is the subject that permission checks should run against,
	// overriding any subject found in the participant chain.
	Subject permission.Subject
	// MessageTarget is the receiver that output produced by the operation
	// should be sent to, overriding any receiver in the participant chain.
	MessageTarget chat.Subscriber
	// Location pins the operation to a location, overriding any location
	// derived from the participant chain.
	Location *world.Location
	// Rotation pins the operation to a rotation, overriding any rotation
	// derived from the participant chain.
	Rotation *world.Rotation
	// BlockTarget is the block the operation acts upon, overriding any block
	// snapshot in the participant chain.
	BlockTarget *world.BlockSnapshot
}

// WithSubject returns a copy of the context with the subject set.
func (ctx Context) WithSubject(s permission.Subject) Context {
	ctx.Subject = s
	return ctx
}

// WithMessageTarget returns a copy of the context with the message target set.
func (ctx Context) WithMessageTarget(t chat.Subscriber) Context {
	ctx.MessageTarget = t
	return ctx
}

// WithLocation returns a copy of the context with the location set.
func (ctx Context) WithLocation(loc world.Location) Context {
	ctx.Location = &loc
	return ctx
}

// WithRotation returns a copy of the context with the rotation set.
func (ctx Context) WithRotation(rot world.Rotation) Context {
	ctx.Rotation = &rot
	return ctx
}

// WithBlockTarget returns a copy of the context with the block target set.
func (ctx Context) WithBlockTarget(snap world.BlockSnapshot) Context {
	ctx.BlockTarget = &snap
	return ctx
}

// keys returns the names of the context values present, in declaration order.
func (ctx Context) keys() []string {
	var keys []string
	if ctx.Subject != nil {
		keys = append(keys, "subject")
	}
	if ctx.MessageTarget != nil {
		keys = append(keys, "message_target")
	}
	if ctx.Location != nil {
		keys = append(keys, "location")
	}
	if ctx.Rotation != nil {
		keys = append(keys, "rotation")
	}
	if ctx.BlockTarget != nil {
		keys = append(keys, "block_target")
	}
	return keys
}
