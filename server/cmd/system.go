package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/basalt-mc/basalt/server/chat"
	"github.com/basalt-mc/basalt/server/permission"
)

// System is the built-in source representing the server itself. It holds
// every permission and routes messages through the default structured logger.
// Role resolution falls back to it when a cause identifies no subject or
// message receiver of its own.
var System systemSource

var (
	_ Source             = systemSource{}
	_ permission.Subject = systemSource{}
	_ chat.Subscriber    = systemSource{}
)

type systemSource struct{}

// Name returns the fixed name of the server principal.
func (systemSource) Name() string { return "Server" }

// Allows reports true for every permission.
func (systemSource) Allows(string) bool { return true }

// Message logs the message through the default logger at info level.
func (systemSource) Message(a ...any) {
	slog.Default().Info(strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
}

// SendCommandOutput logs command feedback, messages at info level and errors
// at error level.
func (systemSource) SendCommandOutput(o *Output) {
	log := slog.Default()
	for _, msg := range o.Messages() {
		log.Info(msg)
	}
	for _, msg := range o.Errors() {
		log.Error(msg)
	}
}
