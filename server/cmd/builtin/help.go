// Package builtin holds the command set shipped with the framework: command
// discovery, plugin introspection and whitelist management.
package builtin

import (
	"sort"
	"strings"

	"github.com/basalt-mc/basalt/server/cmd"
)

// describer is implemented by commands that expose a description shown by
// /help.
type describer interface {
	Description() string
}

type helpCommand struct{}

func (helpCommand) Name() string      { return "help" }
func (helpCommand) Aliases() []string { return []string{"?"} }

func (helpCommand) Description() string {
	return "Shows available commands and their usage."
}

func (h helpCommand) Execute(args string, source cmd.Source, _ cmd.Cause) {
	o := &cmd.Output{}
	defer source.SendCommandOutput(o)

	if name := strings.TrimSpace(args); name != "" {
		name = strings.ToLower(strings.TrimPrefix(name, "/"))
		command, found := cmd.ByAlias(name)
		if !found {
			o.Errort(cmd.MessageUnknown, name)
			return
		}
		line := "/" + command.Name()
		if d, ok := command.(describer); ok && d.Description() != "" {
			line += " - " + d.Description()
		}
		o.Print(line)
		if aliases := command.Aliases(); len(aliases) > 0 {
			o.Printf("Aliases: %v", strings.Join(aliases, ", "))
		}
		return
	}

	commands := cmd.Commands()
	names := make([]string, 0, len(commands))
	for alias, command := range commands {
		if !strings.EqualFold(command.Name(), alias) {
			continue
		}
		names = append(names, alias)
	}
	if len(names) == 0 {
		o.Print("No commands available.")
		return
	}
	sort.Strings(names)

	o.Printf("Available commands (%d):", len(names))
	for _, name := range names {
		command, _ := cmd.ByAlias(name)
		line := "/" + name
		if d, ok := command.(describer); ok && d.Description() != "" {
			line += " - " + d.Description()
		}
		o.Print(line)
	}
}
