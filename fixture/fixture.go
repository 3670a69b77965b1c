package fixture

import (
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/ardnew/fixtool/log"
)

// Fixture describes one file of a synthesized test workspace: its path, the
// accumulated body text, and the build settings declared on its annotation
// line.
type Fixture struct {
	Path          string            `json:"path"                     yaml:"path"`
	Text          string            `json:"text"                     yaml:"text"`
	Crate         string            `json:"crate,omitempty"          yaml:"crate,omitempty"`
	Deps          []string          `json:"deps,omitempty"           yaml:"deps,omitempty"`
	CfgAtoms      []string          `json:"cfg_atoms,omitempty"      yaml:"cfg_atoms,omitempty"`
	CfgKeyValues  []CfgPair         `json:"cfg_key_values,omitempty" yaml:"cfg_key_values,omitempty"`
	Edition       string            `json:"edition,omitempty"        yaml:"edition,omitempty"`
	Env           map[string]string `json:"env,omitempty"            yaml:"env,omitempty"`
	NewSourceRoot bool              `json:"new_source_root,omitempty" yaml:"new_source_root,omitempty"`
}

// CfgPair is one key=value configuration predicate from a cfg: entry.
type CfgPair struct {
	Key   string `json:"key"   yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// defaultMetaLine is synthesized for fixtures that carry no annotation lines
// at all, so single-file fixtures need no explicit metadata.
const defaultMetaLine = metaPrefix + " /main.rs"

// Option configures a parse invocation.
type Option func(*parser)

// WithLogger attaches a logger used to trace parse progress.
func WithLogger(logger log.Logger) Option {
	return func(p *parser) {
		p.logger = logger
	}
}

type parser struct {
	logger log.Logger
}

// ParseReader parses an annotated fixture from an io.Reader.
func ParseReader(r io.Reader, opts ...Option) (*MiniCore, []Fixture, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, WrapError(err)
	}

	return Parse(string(data), opts...)
}

// Parse splits an annotated text blob into an ordered list of file
// descriptors, one per annotation line:
//
//	//- some meta
//	line 1
//	line 2
//	//- other meta
//
// The fixture may open with a minicore declaration selecting flags of the
// embedded reference resource:
//
//	//- minicore: sized
//
// The returned MiniCore is nil when no declaration is present. Fixtures
// without any annotation markers parse as a single file at the default path.
func Parse(text string, opts ...Option) (*MiniCore, []Fixture, error) {
	var p parser
	for _, opt := range opts {
		opt(&p)
	}

	fixture := trimIndent(text)

	var core *MiniCore

	if strings.HasPrefix(fixture, miniCorePrefix) {
		first, rest, _ := splitOnce(fixture, "\n")

		parsed, err := parseMiniCoreLine(first)
		if err != nil {
			return nil, nil, err
		}

		core = parsed
		fixture = rest
	}

	lines := linesWithEnds(fixture)
	if !strings.Contains(fixture, metaPrefix) {
		lines = append([]string{defaultMetaLine}, lines...)
	}

	res := make([]Fixture, 0, 1)

	for ix, line := range lines {
		if strings.Contains(line, metaPrefix) && !strings.HasPrefix(line, metaPrefix) {
			// All annotation lines must share one indentation level with
			// their body; anything else is a misaligned fixture.
			return nil, nil, ErrMetaIndent.With(
				slog.Int("line", ix),
				slog.String("text", line),
			)
		}

		if strings.HasPrefix(line, metaPrefix) {
			entry, err := parseMetaLine(line)
			if err != nil {
				return nil, nil, WrapError(err).With(slog.Int("line", ix))
			}

			res = append(res, entry)

			continue
		}

		if looksLikeMetaLine(line) {
			return nil, nil, ErrSuspiciousLine.With(
				slog.Int("line", ix),
				slog.String("text", line),
			)
		}

		if len(res) > 0 {
			res[len(res)-1].Text += line
		}
	}

	p.logger.Debug("fixture parsed",
		slog.Int("files", len(res)),
		slog.Bool("minicore", core != nil),
	)

	return core, res, nil
}

// looksLikeMetaLine is a best-effort lint for body lines that were probably
// meant as annotation lines but lack the marker: an ordinary comment that
// contains a colon, no path separator shorthand ("::"), and no uppercase
// letters. It can both miss real mistakes and flag legitimate text.
func looksLikeMetaLine(line string) bool {
	if !strings.HasPrefix(line, "// ") {
		return false
	}

	if !strings.Contains(line, ":") || strings.Contains(line, "::") {
		return false
	}

	for _, r := range line {
		if unicode.IsUpper(r) {
			return false
		}
	}

	return true
}
