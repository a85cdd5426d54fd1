package builtin

import (
	"strings"

	"github.com/basalt-mc/basalt/server/cmd"
	"github.com/basalt-mc/basalt/server/whitelist"
)

type whitelistCommand struct {
	whitelist *whitelist.Whitelist
}

func (whitelistCommand) Name() string      { return "whitelist" }
func (whitelistCommand) Aliases() []string { return []string{"wl"} }

func (whitelistCommand) Description() string {
	return "Manages the names allowed to join the server."
}

func (c whitelistCommand) Execute(args string, source cmd.Source, cc cmd.Cause) {
	o := &cmd.Output{}
	defer source.SendCommandOutput(o)

	if !cc.Subject().Allows("basalt.command.whitelist") {
		o.Errort(cmd.MessageNoPermission)
		return
	}

	fields := strings.Fields(args)
	if len(fields) == 0 {
		o.Error("Usage: /whitelist <add|remove|list|on|off> [name]")
		return
	}
	switch sub, rest := fields[0], strings.Join(fields[1:], " "); sub {
	case "add":
		added, err := c.whitelist.Add(rest)
		if err != nil {
			o.Errorf("Could not add %q: %v", rest, err)
			return
		}
		if !added {
			o.Printf("%v is already whitelisted.", rest)
			return
		}
		o.Printf("Added %v to the whitelist.", rest)
	case "remove":
		removed, err := c.whitelist.Remove(rest)
		if err != nil {
			o.Errorf("Could not remove %q: %v", rest, err)
			return
		}
		if !removed {
			o.Printf("%v was not whitelisted.", rest)
			return
		}
		o.Printf("Removed %v from the whitelist.", rest)
	case "list":
		players := c.whitelist.Players()
		if len(players) == 0 {
			o.Print("The whitelist is empty.")
			return
		}
		o.Printf("Whitelisted players (%d): %v", len(players), strings.Join(players, ", "))
	case "on":
		c.whitelist.SetEnabled(true)
		o.Print("The whitelist is now enforced.")
	case "off":
		c.whitelist.SetEnabled(false)
		o.Print("The whitelist is no longer enforced.")
	default:
		o.Errorf("Unknown subcommand %q.", sub)
	}
}
