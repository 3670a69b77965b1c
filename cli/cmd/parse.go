package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/fixtool/fixture"
	"github.com/ardnew/fixtool/log"
)

// coreFixturePath is the sysroot path assigned to the resolved minicore file
// when it is appended to the descriptor output.
const coreFixturePath = "/sysroot/core/lib.rs"

// Parse parses fixture text into file descriptors and writes them to stdout
// in a structured format.
type Parse struct {
	Format string `default:"json" enum:"json,yaml" help:"Output format"                       short:"o"`
	Indent int    `default:"2"                     help:"Indent width for structured output"  short:"i"`
	Select string `                                help:"Keep only descriptors for which this expression is true (fields: Path, Crate, Deps, Edition, ...)" short:"e"`
	Core   bool   `                                help:"Append the resolved minicore file to the output"`

	Source string `arg:"" default:"-" help:"Fixture input file or '-' for stdin" name:"source" optional:""`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	reader, done, err := openSource(ctx, p.Source)
	if err != nil {
		return ErrReadSource.
			Wrap(err).
			With(slog.String("source", p.Source))
	}
	defer done()

	core, files, err := fixture.ParseReader(
		bufio.NewReader(reader),
		fixture.WithLogger(log.Default()),
	)
	if err != nil {
		return fixture.WrapError(err).
			With(slog.String("command", "parse"))
	}

	if p.Select != "" {
		files, err = selectFiles(files, p.Select)
		if err != nil {
			return err
		}
	}

	if p.Core && core != nil {
		text, err := core.DefaultSource()
		if err != nil {
			return fixture.WrapError(err).
				With(slog.String("command", "parse"))
		}

		files = append(files, fixture.Fixture{
			Path:  coreFixturePath,
			Text:  text,
			Crate: "core",
		})
	}

	return p.write(os.Stdout, files)
}

// selectFiles keeps only the descriptors for which the expression evaluates
// to true. Descriptor fields are in scope by name.
func selectFiles(files []fixture.Fixture, sel string) ([]fixture.Fixture, error) {
	prg, err := expr.Compile(sel, expr.Env(fixture.Fixture{}), expr.AsBool())
	if err != nil {
		return nil, ErrSelectExpr.
			Wrap(err).
			With(slog.String("expr", sel))
	}

	kept := make([]fixture.Fixture, 0, len(files))

	for _, f := range files {
		out, err := expr.Run(prg, f)
		if err != nil {
			return nil, ErrSelectExpr.
				Wrap(err).
				With(
					slog.String("expr", sel),
					slog.String("path", f.Path),
				)
		}

		if keep, ok := out.(bool); ok && keep {
			kept = append(kept, f)
		}
	}

	return kept, nil
}

// write encodes the descriptors in the configured output format.
func (p *Parse) write(w io.Writer, files []fixture.Fixture) error {
	switch p.Format {
	case "yaml":
		enc := yaml.NewEncoder(w, yaml.Indent(p.Indent))
		defer enc.Close()

		if err := enc.Encode(files); err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", strings.Repeat(" ", p.Indent))

		if err := enc.Encode(files); err != nil {
			return ErrJSONMarshal.Wrap(err)
		}
	}

	return nil
}
