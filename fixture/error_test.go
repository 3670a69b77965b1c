package fixture

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestError_SentinelClassification(t *testing.T) {
	t.Parallel()

	// With and Wrap return copies; classification must survive both.
	err := ErrInvalidFlag.With(slog.String("flag", "bogus"))
	if !errors.Is(err, ErrInvalidFlag) {
		t.Error("With() broke sentinel classification")
	}

	wrapped := WrapError(err).With(slog.Int("line", 3))
	if !errors.Is(wrapped, ErrInvalidFlag) {
		t.Error("WrapError() broke sentinel classification")
	}

	if errors.Is(err, ErrUnusedFlag) {
		t.Error("sentinels must not match each other")
	}
}

func TestError_Message(t *testing.T) {
	t.Parallel()

	base := NewError("outer")
	if got := base.Wrap(errors.New("inner")).Error(); got != "outer: inner" {
		t.Errorf("Error() = %q", got)
	}

	if got := base.Error(); got != "outer" {
		t.Errorf("Error() = %q", got)
	}
}

func TestError_Suggestions(t *testing.T) {
	t.Parallel()

	err := ErrUnknownMetaKey.withSuggestions("crates", metaKeys)

	var found bool

	for _, attr := range err.attrs {
		if attr.Key == "did_you_mean" {
			found = true

			if !strings.Contains(attr.Value.String(), "crate") {
				t.Errorf("did_you_mean = %q, want it to contain crate", attr.Value.String())
			}
		}
	}

	if !found {
		t.Error("expected a did_you_mean attribute")
	}
}

func TestError_SuggestionsNoMatch(t *testing.T) {
	t.Parallel()

	err := ErrInvalidFlag.withSuggestions("zzzz", []string{"sized"})
	if len(err.attrs) != len(ErrInvalidFlag.attrs) {
		t.Error("expected no suggestion attribute for unmatchable name")
	}
}
