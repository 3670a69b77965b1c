package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/fixtool/fixture"
)

// Core resolves the minicore reference resource against a set of activated
// flags and prints the filtered source to stdout.
type Core struct {
	Resource string `help:"Alternate reference resource file" short:"r" type:"existingfile"`

	Flags []string `arg:"" help:"Flags to activate" name:"flag" optional:""`
}

// Run executes the core command.
func (c *Core) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	core, err := fixture.NewMiniCore(c.Flags...)
	if err != nil {
		return fixture.WrapError(err).
			With(slog.String("command", "core"))
	}

	var text string

	if c.Resource != "" {
		buf, err := os.ReadFile(c.Resource)
		if err != nil {
			return ErrReadSource.
				Wrap(err).
				With(slog.String("resource", c.Resource))
		}

		text, err = core.Source(string(buf))
		if err != nil {
			return fixture.WrapError(err).
				With(slog.String("resource", c.Resource))
		}
	} else {
		text, err = core.DefaultSource()
		if err != nil {
			return fixture.WrapError(err).
				With(slog.String("command", "core"))
		}
	}

	_, err = os.Stdout.WriteString(text)

	return err
}
