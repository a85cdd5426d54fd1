// Package event declares the event contracts dispatched to plugin handlers:
// a cancellation context shared by all events and the concrete event values
// themselves. Events are created by the dispatch hub once per triggering
// operation, passed synchronously through the registered handlers, and
// discarded when the operation completes.
package event

import "github.com/basalt-mc/basalt/server/cause"

// Context carries an event value through a handler chain together with the
// cause of the operation and a cancellation flag. Once cancelled, the host
// discards any mutations made to the event value.
type Context[T any] struct {
	val       T
	cause     cause.Cause
	cancelled bool
}

// NewContext returns a Context carrying the event value and cause passed.
func NewContext[T any](val T, c cause.Cause) *Context[T] {
	return &Context[T]{val: val, cause: c}
}

// Val returns the event value the context carries.
func (ctx *Context[T]) Val() T {
	return ctx.val
}

// Cause returns the cause of the operation the event describes.
func (ctx *Context[T]) Cause() cause.Cause {
	return ctx.cause
}

// Cancel cancels the event. Cancellation is one-way: there is no way to
// un-cancel an event once a handler cancelled it.
func (ctx *Context[T]) Cancel() {
	ctx.cancelled = true
}

// Cancelled reports whether the event was cancelled.
func (ctx *Context[T]) Cancelled() bool {
	return ctx.cancelled
}
