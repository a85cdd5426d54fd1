// Package console provides a simple CLI backed command source that reads
// command lines from an io.Reader (defaulting to os.Stdin) and executes them
// as the server's System principal.
package console

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/basalt-mc/basalt/server/cause"
	"github.com/basalt-mc/basalt/server/cmd"
)

// Console reads command lines and executes them through the command registry.
type Console struct {
	log    *slog.Logger
	reader io.Reader
}

// New returns a Console writing command output to the supplied logger and
// reading from os.Stdin.
func New(log *slog.Logger) *Console {
	if log == nil {
		log = slog.Default()
	}
	return &Console{log: log, reader: os.Stdin}
}

// WithReader sets a custom reader for the console input. It enables testing
// the console without relying on os.Stdin.
func (c *Console) WithReader(r io.Reader) *Console {
	if r != nil {
		c.reader = r
	}
	return c
}

// Run starts consuming commands from the console. It blocks until the context
// is cancelled or the underlying reader reaches EOF. Each line is executed on
// behalf of cmd.System with a cause rooted in it.
func (c *Console) Run(ctx context.Context) {
	scanner := bufio.NewScanner(c.reader)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				c.log.Error("console input error", "err", err)
			}
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "/") {
			line = "/" + line
		}
		chain := cause.New(cause.Context{}, cmd.System)
		cmd.ExecuteLine(cmd.System, line, cmd.NewCause(chain), nil)
	}
}
