package cmd

import (
	"bufio"
	"context"
	"log/slog"

	"github.com/ardnew/fixtool/fixture"
	"github.com/ardnew/fixtool/log"
)

// Check validates fixture text without producing output. Each source is
// parsed independently so one malformed file does not mask errors in the
// others.
type Check struct {
	Sources []string `arg:"" help:"Fixture input file(s) or '-' for stdin" name:"source" optional:""`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if ktx := kongContextFrom(ctx); ktx != nil {
		log.TraceContext(ctx, "run", slog.String("command", ktx.Command()))
	}

	sources := c.Sources
	if len(sources) == 0 {
		sources = []string{stdinSource}
	}

	failed := 0

	for _, src := range sources {
		if err := c.checkOne(ctx, src); err != nil {
			failed++

			log.ErrorContext(ctx, "invalid fixture",
				slog.String("source", src),
				slog.Any("error", err),
			)

			continue
		}

		log.InfoContext(ctx, "fixture ok", slog.String("source", src))
	}

	if failed > 0 {
		return ErrCheckFailed.With(
			slog.Int("failed", failed),
			slog.Int("total", len(sources)),
		)
	}

	return nil
}

// checkOne parses a single source, also resolving its minicore declaration
// against the embedded reference resource when present.
func (c *Check) checkOne(ctx context.Context, source string) error {
	reader, done, err := openSource(ctx, source)
	if err != nil {
		return ErrReadSource.Wrap(err)
	}
	defer done()

	core, files, err := fixture.ParseReader(bufio.NewReader(reader))
	if err != nil {
		return err
	}

	if core != nil {
		if _, err := core.DefaultSource(); err != nil {
			return err
		}
	}

	log.DebugContext(ctx, "parsed",
		slog.String("source", source),
		slog.Int("files", len(files)),
	)

	return nil
}
