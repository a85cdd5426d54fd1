package builtin

import (
	"github.com/basalt-mc/basalt/server/cmd"
	"github.com/basalt-mc/basalt/server/whitelist"
)

// Register registers the built-in command set.
func Register(hub hubAdapter, wl *whitelist.Whitelist) {
	cmd.Register(helpCommand{})
	cmd.Register(pluginsCommand{hub: hub})
	cmd.Register(whitelistCommand{whitelist: wl})
}
