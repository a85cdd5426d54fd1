// Package cmd declares the command surface of the server: sources commands
// run on behalf of, the registry commands are published in, and the cause view
// used to resolve who and where a command invocation concerns.
package cmd

import (
	"fmt"

	"github.com/basalt-mc/basalt/server/chat"
	"golang.org/x/text/language"
)

// Source represents a source of a command execution, such as a player or the
// server console.
type Source interface {
	// Name returns the name the source is displayed as in command feedback.
	Name() string
	// SendCommandOutput sends the output of a command executed by the source
	// back to it.
	SendCommandOutput(o *Output)
}

// Output holds the feedback produced while executing a single command:
// regular messages and errors. A command failed if the output holds at least
// one error.
type Output struct {
	messages []string
	errors   []string
}

// Printf formats a message following fmt.Sprintf rules and adds it to the
// output.
func (o *Output) Printf(format string, a ...any) {
	o.messages = append(o.messages, fmt.Sprintf(format, a...))
}

// Print adds the message passed to the output verbatim.
func (o *Output) Print(msg string) {
	o.messages = append(o.messages, msg)
}

// Printt formats the translation with the arguments passed and adds the
// result as a message.
func (o *Output) Printt(t chat.Translation, a ...any) {
	o.messages = append(o.messages, t.F(a...))
}

// Errorf formats an error message following fmt.Sprintf rules and adds it to
// the output.
func (o *Output) Errorf(format string, a ...any) {
	o.errors = append(o.errors, fmt.Sprintf(format, a...))
}

// Error adds the error message passed to the output verbatim.
func (o *Output) Error(msg string) {
	o.errors = append(o.errors, msg)
}

// Errort formats the translation with the arguments passed and adds the
// result as an error.
func (o *Output) Errort(t chat.Translation, a ...any) {
	o.errors = append(o.errors, t.F(a...))
}

// Errortl formats the translation in the language passed and adds the result
// as an error.
func (o *Output) Errortl(t chat.Translation, tag language.Tag, a ...any) {
	o.errors = append(o.errors, t.Tr(tag, a...))
}

// Messages returns the messages added to the output in order.
func (o *Output) Messages() []string {
	return o.messages
}

// Errors returns the error messages added to the output in order.
func (o *Output) Errors() []string {
	return o.errors
}

// ErrorCount returns the number of errors added to the output.
func (o *Output) ErrorCount() int {
	return len(o.errors)
}
