// Package plugin dispatches server events to in-process plugin handlers and
// provides the per-plugin services the handlers rely on: a data store and a
// TOML-backed configuration. Plugins are Go values registered by the host;
// discovering and loading plugin binaries is the host's concern.
package plugin

import (
	"github.com/basalt-mc/basalt/server/event"
)

// Handler handles events dispatched by the hub. Implementations usually embed
// NopHandler to stay compatible when new events are added.
type Handler interface {
	// HandleAITargetChange handles an agent's AI switching targets. The
	// handler may replace or remove the proposed target through the event
	// value, or cancel the change entirely.
	HandleAITargetChange(ctx *event.Context[*event.AITargetChange])
	// HandleLogin handles a client that authenticated and is about to be
	// spawned. The handler may redirect the client through the event value,
	// or cancel the event to disconnect the client.
	HandleLogin(ctx *event.Context[*event.Login])
}

// NopHandler implements Handler with no-op methods. Embed it to implement
// only the events of interest.
type NopHandler struct{}

var _ Handler = NopHandler{}

func (NopHandler) HandleAITargetChange(*event.Context[*event.AITargetChange]) {}
func (NopHandler) HandleLogin(*event.Context[*event.Login])                   {}
