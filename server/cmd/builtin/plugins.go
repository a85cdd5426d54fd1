package builtin

import (
	"github.com/basalt-mc/basalt/server/cmd"
)

// hubAdapter is the subset of the event hub the plugins command relies on.
type hubAdapter interface {
	HandlerCount() int
}

type pluginsCommand struct {
	hub hubAdapter
}

func (pluginsCommand) Name() string      { return "plugins" }
func (pluginsCommand) Aliases() []string { return []string{"pl"} }

func (pluginsCommand) Description() string {
	return "Shows the state of the plugin event hub."
}

func (c pluginsCommand) Execute(_ string, source cmd.Source, _ cmd.Cause) {
	o := &cmd.Output{}
	o.Printf("Event handlers attached: %d", c.hub.HandlerCount())
	source.SendCommandOutput(o)
}
