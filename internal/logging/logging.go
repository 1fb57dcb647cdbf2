// Package logging builds the hclog logger shared by the siteconf commands.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
)

const Name = "siteconf"

type Options struct {
	Level  string
	JSON   bool
	Output io.Writer
}

// New returns a named logger. An empty level means info.
func New(opts Options) (hclog.Logger, error) {
	level := hclog.Info
	if strings.TrimSpace(opts.Level) != "" {
		level = hclog.LevelFromString(opts.Level)
		if level == hclog.NoLevel {
			return nil, fmt.Errorf("invalid log level %q, expected trace, debug, info, warn or error", opts.Level)
		}
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       Name,
		Level:      level,
		JSONFormat: opts.JSON,
		Output:     opts.Output,
	}), nil
}
