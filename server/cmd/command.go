package cmd

import (
	"maps"
	"strings"
	"sync"

	"github.com/basalt-mc/basalt/server/chat"
	"golang.org/x/text/language"
)

// Command is a command registered with the server. Commands are executed on
// behalf of a Source together with the Cause of the invocation.
type Command interface {
	// Name returns the primary name of the command, without the leading
	// slash.
	Name() string
	// Aliases returns additional names the command may be invoked by. The
	// primary name need not be repeated.
	Aliases() []string
	// Execute runs the command. args holds the raw argument string following
	// the command name, which may be empty.
	Execute(args string, source Source, cc Cause)
}

// MessageUnknown is the feedback sent when a command line names a command that
// is not registered.
var MessageUnknown = chat.Translate("Unknown command: %v. Run /help for a list of commands.").
	With(language.Dutch, "Onbekend commando: %v. Gebruik /help voor een lijst van commando's.").
	With(language.German, "Unbekannter Befehl: %v. Nutze /help für eine Liste der Befehle.")

// MessageNoPermission is the feedback sent when the resolved subject of a
// command invocation lacks the permission a command requires.
var MessageNoPermission = chat.Translate("You do not have permission to use this command.").
	With(language.Dutch, "Je hebt geen toestemming om dit commando te gebruiken.").
	With(language.German, "Du hast keine Berechtigung, diesen Befehl zu nutzen.")

var (
	registryMu sync.RWMutex
	registry   = map[string]Command{}
)

// Register registers a command under its name and all of its aliases. It
// panics if the command has an empty name. Registering a name that is already
// taken replaces the earlier command for that name.
func Register(command Command) {
	name := strings.ToLower(strings.TrimSpace(command.Name()))
	if name == "" {
		panic("cmd.Register: command must have a name")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = command
	for _, alias := range command.Aliases() {
		alias = strings.ToLower(strings.TrimSpace(alias))
		if alias != "" {
			registry[alias] = command
		}
	}
}

// ByAlias looks up a command by one of its names.
func ByAlias(alias string) (Command, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	command, ok := registry[strings.ToLower(alias)]
	return command, ok
}

// Commands returns all registered commands indexed by alias.
func Commands() map[string]Command {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return maps.Clone(registry)
}

// ExecuteLine executes a command line on behalf of the Source passed, with cc
// describing the cause of the invocation. The commandLine is expected to
// include the leading slash. If the command cannot be found, an appropriate
// error is sent back to the Source. The optional before function may be
// supplied to intercept execution; returning false from it will stop
// execution.
func ExecuteLine(source Source, commandLine string, cc Cause, before func(Command, []string) bool) {
	if source == nil {
		panic("cmd.ExecuteLine: source must not be nil")
	}
	commandLine = strings.TrimSpace(commandLine)
	if commandLine == "" {
		return
	}
	args := strings.Split(commandLine, " ")
	name, ok := strings.CutPrefix(args[0], "/")
	if !ok || name == "" {
		return
	}

	command, ok := ByAlias(name)
	if !ok {
		output := &Output{}
		output.Errort(MessageUnknown, name)
		source.SendCommandOutput(output)
		return
	}
	if before != nil && !before(command, args[1:]) {
		return
	}
	command.Execute(strings.Join(args[1:], " "), source, cc)
}
