// Package chat declares the message-receiving contract of the server and the
// translation values used to produce language-aware output for it.
package chat

// Subscriber is anything that may receive chat or command output: a player, a
// console, or a plugin-provided sink.
type Subscriber interface {
	// Message sends a message to the subscriber. The arguments are formatted
	// following the rules of fmt.Sprintln, without the trailing newline.
	Message(a ...any)
}
