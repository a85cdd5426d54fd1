package whitelist

import (
	"log/slog"

	"github.com/basalt-mc/basalt/server/event"
	"github.com/basalt-mc/basalt/server/plugin"
)

// Guard is an event handler that cancels the login of every player not on the
// whitelist while it is enforced. Attach it to a plugin.Hub to enforce the
// whitelist.
type Guard struct {
	plugin.NopHandler
	whitelist *Whitelist
	log       *slog.Logger
}

// NewGuard returns a Guard enforcing the whitelist passed, logging denied
// logins through log.
func NewGuard(w *Whitelist, log *slog.Logger) *Guard {
	if log == nil {
		log = slog.Default()
	}
	return &Guard{whitelist: w, log: log.With("subsystem", "whitelist")}
}

// HandleLogin cancels the login if the connecting player is not whitelisted.
func (g *Guard) HandleLogin(ctx *event.Context[*event.Login]) {
	login := ctx.Val()
	if g.whitelist.Allowed(login.Name()) {
		return
	}
	ctx.Cancel()
	g.log.Info("denied login of non-whitelisted player", "player", login.Name(), "uuid", login.UUID())
}
