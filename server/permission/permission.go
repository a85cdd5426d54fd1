// Package permission declares the subject contract used for permission checks
// during command execution. The actual permission resolution lives in the
// host; this package only names the surface the command layer depends on.
package permission

// Subject is anything that permissions may be checked against: a player, the
// server console, or a synthetic principal created by a plugin.
type Subject interface {
	// Name returns the name the subject is known by, used in log output and
	// command feedback.
	Name() string
	// Allows reports whether the subject holds the permission passed.
	// Permissions are dotted strings such as 'basalt.command.stop'.
	Allows(permission string) bool
}

// Fixed is a Subject with the same static decision for every permission. It
// backs the server's own principal and is useful in tests.
type Fixed struct {
	name  string
	allow bool
}

// NewFixed returns a Fixed subject with the name passed that grants every
// permission if allow is true and denies every permission otherwise.
func NewFixed(name string, allow bool) Fixed {
	return Fixed{name: name, allow: allow}
}

// Name returns the name the subject was created with.
func (f Fixed) Name() string { return f.name }

// Allows returns the static decision of the subject, ignoring the permission.
func (f Fixed) Allows(string) bool { return f.allow }
