package plugin

import (
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/basalt-mc/basalt/server/cause"
	"github.com/basalt-mc/basalt/server/event"
	"github.com/basalt-mc/basalt/server/world"
)

type registration struct {
	plugin  string
	handler Handler
	id      uint64
}

type handlerList struct {
	regs []registration
	next uint64
}

func (l *handlerList) add(plugin string, handler Handler) uint64 {
	id := l.next
	l.next++
	l.regs = append(l.regs, registration{plugin: plugin, handler: handler, id: id})
	return id
}

func (l *handlerList) removeByID(id uint64) {
	if len(l.regs) == 0 {
		return
	}
	regs := l.regs[:0]
	for _, reg := range l.regs {
		if reg.id == id {
			continue
		}
		regs = append(regs, reg)
	}
	l.regs = regs
}

func (l *handlerList) removePlugin(plugin string) {
	if len(l.regs) == 0 {
		return
	}
	regs := l.regs[:0]
	for _, reg := range l.regs {
		if reg.plugin == plugin {
			continue
		}
		regs = append(regs, reg)
	}
	l.regs = regs
}

func (l *handlerList) rename(oldName, newName string) {
	for i := range l.regs {
		if l.regs[i].plugin == oldName {
			l.regs[i].plugin = newName
		}
	}
}

func (l *handlerList) snapshot() []registration {
	if len(l.regs) == 0 {
		return []registration{}
	}
	return slices.Clone(l.regs)
}

// Hub dispatches events synchronously to the handlers plugins registered.
// Handlers run in registration order; a handler that cancels an event stops
// the remaining plugin handlers from seeing it. A panicking handler is
// isolated: the panic is logged against the owning plugin and dispatch
// continues with the next handler.
type Hub struct {
	mu       sync.Mutex
	log      *slog.Logger
	disabled map[string]struct{}
	handlers handlerList
	chain    atomic.Value // []registration
}

// NewHub returns a Hub logging through log. Plugins named in cfg.Disabled are
// refused when they attach handlers.
func NewHub(log *slog.Logger, cfg Config) *Hub {
	if log == nil {
		log = slog.Default()
	}
	disabled := make(map[string]struct{}, len(cfg.Disabled))
	for _, name := range cfg.Disabled {
		disabled[name] = struct{}{}
	}
	hub := &Hub{log: log.With("subsystem", "plugin.hub"), disabled: disabled}
	hub.chain.Store([]registration{})
	return hub
}

// Attach registers a handler owned by the named plugin. The returned function
// removes the handler again; calling it more than once is safe. Attach is a
// no-op returning an inert remove function if the handler is nil or the
// plugin is disabled by configuration.
func (h *Hub) Attach(plugin string, handler Handler) func() {
	if handler == nil {
		return func() {}
	}
	if _, ok := h.disabled[plugin]; ok {
		h.log.Debug("refusing handler of disabled plugin", "plugin", plugin)
		return func() {}
	}
	h.mu.Lock()
	id := h.handlers.add(plugin, handler)
	h.chain.Store(h.handlers.snapshot())
	h.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			h.handlers.removeByID(id)
			h.chain.Store(h.handlers.snapshot())
			h.mu.Unlock()
		})
	}
}

// Clear removes every handler the named plugin registered.
func (h *Hub) Clear(plugin string) {
	h.mu.Lock()
	h.handlers.removePlugin(plugin)
	h.chain.Store(h.handlers.snapshot())
	h.mu.Unlock()
}

// Rename re-attributes the handlers of a plugin to a new name, keeping
// registrations intact across a plugin rename.
func (h *Hub) Rename(oldName, newName string) {
	if newName == "" || oldName == newName {
		return
	}
	h.mu.Lock()
	h.handlers.rename(oldName, newName)
	h.chain.Store(h.handlers.snapshot())
	h.mu.Unlock()
}

// HandlerCount returns the number of handlers currently attached.
func (h *Hub) HandlerCount() int {
	return len(h.loadChain())
}

func (h *Hub) loadChain() []registration {
	if v := h.chain.Load(); v != nil {
		return v.([]registration)
	}
	return nil
}

// DispatchAITargetChange dispatches an AI target change of agent to the
// attached handlers, with target as the proposed new target (nil for a
// removal). It returns the final target and whether the host should apply the
// change. The change must not be applied when false is returned: a handler
// cancelled the event.
func (h *Hub) DispatchAITargetChange(c cause.Cause, agent world.Agent, target world.Entity) (world.Entity, bool) {
	ev := event.NewAITargetChange(agent, target)
	ctx := event.NewContext(ev, c)
	h.dispatch(ctx, c, func(handler Handler) {
		handler.HandleAITargetChange(ctx)
	})
	if ctx.Cancelled() {
		return nil, false
	}
	final, _ := ev.Target()
	return final, true
}

// DispatchLogin dispatches the login event passed to the attached handlers
// and returns the finalized destination. The client must be disconnected
// instead of spawned when false is returned: a handler cancelled the event.
func (h *Hub) DispatchLogin(c cause.Cause, login *event.Login) (world.World, world.Transform, bool) {
	ctx := event.NewContext(login, c)
	h.dispatch(ctx, c, func(handler Handler) {
		handler.HandleLogin(ctx)
	})
	if ctx.Cancelled() {
		return nil, world.Transform{}, false
	}
	w, t := login.Destination()
	return w, t, true
}

type cancellable interface {
	Cancelled() bool
}

func (h *Hub) dispatch(ctx cancellable, c cause.Cause, fn func(Handler)) {
	for _, reg := range h.loadChain() {
		h.invoke(reg, c, fn)
		if ctx.Cancelled() {
			return
		}
	}
}

func (h *Hub) invoke(reg registration, c cause.Cause, fn func(Handler)) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("plugin event handler panicked", "plugin", reg.plugin, "panic", r, "cause", c.Fingerprint())
		}
	}()
	fn(reg.handler)
}
