package fixture

import (
	_ "embed"
	"log/slog"
	"strings"
)

// miniCorePrefix introduces the optional first line of a fixture that
// activates flags of the reference resource, e.g. "//- minicore: sized".
const miniCorePrefix = "//- minicore:"

// docPrefix marks preamble lines of the reference resource.
const docPrefix = "//!"

// flagsSentinel toggles on flag-declaration parsing inside the preamble.
const flagsSentinel = "Available flags:"

// Region markers of the reference resource body. Block markers bracket a
// named span; the inline marker gates only its own line.
const (
	regionStart  = "// region:"
	regionEnd    = "// endregion:"
	regionInline = "// :"
)

// rawMiniCore is the embedded default reference resource: a curated,
// flag-gated stand-in for a standard library core.
//
//go:embed minicore.rs
var rawMiniCore string

// MiniCore carries the set of reference-resource flags a fixture activated.
// Resolving it against a resource closes the set under the declared flag
// implications and strips every region gated by an inactive flag.
type MiniCore struct {
	activated []string
}

// NewMiniCore builds a MiniCore from explicitly activated flags.
// Repeating a flag is an error.
func NewMiniCore(flags ...string) (*MiniCore, error) {
	core := &MiniCore{activated: make([]string, 0, len(flags))}

	for _, flag := range flags {
		if hasName(core.activated, flag) {
			return nil, ErrDuplicateFlag.With(slog.String("flag", flag))
		}

		core.activated = append(core.activated, flag)
	}

	return core, nil
}

// parseMiniCoreLine parses the fixture's declaration line into the initially
// activated flag set.
func parseMiniCoreLine(line string) (*MiniCore, error) {
	line = strings.TrimSpace(strings.TrimPrefix(line, miniCorePrefix))

	return NewMiniCore(strings.Split(line, ", ")...)
}

// Flags returns the activated flags in declaration order.
func (mc *MiniCore) Flags() []string {
	return append([]string(nil), mc.activated...)
}

// HasFlag reports whether the given flag is activated.
func (mc *MiniCore) HasFlag(flag string) bool {
	return hasName(mc.activated, flag)
}

// DefaultSource resolves the declaration against the embedded reference
// resource.
func (mc *MiniCore) DefaultSource() (string, error) {
	return mc.Source(rawMiniCore)
}

// Source resolves the declaration against the given reference resource and
// returns its text with every region gated by an inactive flag removed.
//
// The resource opens with a documentation preamble declaring the universe of
// valid flags and their implications; the activated set is validated against
// that universe and closed under the implications before filtering. Source
// does not mutate the receiver, so it may be called with several resources.
func (mc *MiniCore) Source(resource string) (string, error) {
	st := &flagState{activated: append([]string(nil), mc.activated...)}

	body, err := st.parsePreamble(resource)
	if err != nil {
		return "", err
	}

	for _, flag := range mc.activated {
		if err := st.assertValidFlag(flag); err != nil {
			return "", err
		}
	}

	st.close()

	return st.filterRegions(body)
}

// flagState is the working state of one resolution: the monotonically
// growing activated set, the declared flag universe, and the implication
// edges, all in insertion order.
type flagState struct {
	activated    []string
	valid        []string
	implications [][2]string
}

func (st *flagState) assertValidFlag(flag string) error {
	if !hasName(st.valid, flag) {
		return ErrInvalidFlag.
			With(
				slog.String("flag", flag),
				slog.String("valid", strings.Join(st.valid, ", ")),
			).
			withSuggestions(flag, st.valid)
	}

	return nil
}

// parsePreamble consumes the documentation preamble of the resource,
// recording valid flags and implication edges, and returns the remaining
// body lines. Dependencies must be declared before the flags that imply
// them, which keeps the implication graph a DAG by construction.
func (st *flagState) parsePreamble(resource string) ([]string, error) {
	lines := linesWithEnds(resource)

	parsingFlags := false

	for ix, line := range lines {
		content, ok := strings.CutPrefix(line, docPrefix)
		if !ok {
			if strings.TrimSpace(line) != "" {
				return nil, ErrPreamble.With(
					slog.Int("line", ix),
					slog.String("text", line),
				)
			}

			// The blank terminator is consumed with the preamble.
			return lines[ix+1:], nil
		}

		if parsingFlags {
			flagPart, depsPart, _ := splitOnce(content, ":")

			flag := strings.TrimSpace(flagPart)
			st.valid = append(st.valid, flag)

			for _, dep := range strings.Split(depsPart, ", ") {
				dep = strings.TrimSpace(dep)
				if dep == "" {
					continue
				}

				if err := st.assertValidFlag(dep); err != nil {
					return nil, WrapError(err).With(slog.String("flag", flag))
				}

				st.implications = append(st.implications, [2]string{flag, dep})
			}
		}

		if strings.Contains(content, flagsSentinel) {
			parsingFlags = true
		}
	}

	return nil, nil
}

// close expands the activated set to its transitive closure under the
// implication edges. Plain fixed-point iteration: activation is monotone
// over a finite universe, so the loop always terminates, cycles included.
func (st *flagState) close() {
	for {
		changed := false

		for _, edge := range st.implications {
			u, v := edge[0], edge[1]
			if hasName(st.activated, u) && !hasName(st.activated, v) {
				st.activated = append(st.activated, v)
				changed = true
			}
		}

		if !changed {
			return
		}
	}
}

// filterRegions streams the body lines through a region-name stack and
// emits only lines whose enclosing regions are all activated. A line is
// kept iff the stack is empty or every name on it is an activated flag.
func (st *flagState) filterRegions(body []string) (string, error) {
	var (
		buf  strings.Builder
		open []string
		seen []string
	)

	for _, line := range body {
		trimmed := strings.TrimSpace(line)

		if name, ok := strings.CutPrefix(trimmed, regionStart); ok {
			open = append(open, name)

			continue
		}

		if name, ok := strings.CutPrefix(trimmed, regionEnd); ok {
			if len(open) == 0 {
				return "", ErrRegionMismatch.With(
					slog.String("endregion", name),
				)
			}

			prev := open[len(open)-1]
			open = open[:len(open)-1]

			if prev != name {
				return "", ErrRegionMismatch.With(
					slog.String("region", prev),
					slog.String("endregion", name),
				)
			}

			continue
		}

		// An inline marker gates only its own line: push, evaluate, pop.
		inline := false
		if idx := strings.Index(trimmed, regionInline); idx >= 0 {
			inline = true

			open = append(open, trimmed[idx+len(regionInline):])
		}

		keep := true

		for _, region := range open {
			if strings.HasPrefix(region, " ") {
				return "", ErrRegionName.With(slog.String("region", region))
			}

			if err := st.assertValidFlag(region); err != nil {
				return "", err
			}

			seen = append(seen, region)
			keep = keep && hasName(st.activated, region)
		}

		if keep {
			buf.WriteString(line)
		}

		if inline {
			open = open[:len(open)-1]
		}
	}

	// A declared flag that gates nothing is dead documentation.
	for _, flag := range st.valid {
		if !hasName(seen, flag) {
			return "", ErrUnusedFlag.With(slog.String("flag", flag))
		}
	}

	return buf.String(), nil
}

// hasName reports membership in an insertion-ordered name list. Flag sets
// here are small; a linear scan keeps the duplicate-detection semantics
// explicit.
func hasName(names []string, name string) bool {
	for _, it := range names {
		if it == name {
			return true
		}
	}

	return false
}
