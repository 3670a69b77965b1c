package fixture

import (
	"errors"
	"strings"
	"testing"
)

// testResource is a small synthetic reference resource: flag "extra"
// implies "base", flag "solo" stands alone.
const testResource = `//! Synthetic resource for tests.
//!
//! Available flags:
//!     base
//!     extra: base
//!     solo

base line // :base
// region:extra
extra line
// endregion:extra
solo line // :solo
plain line
`

func mustMiniCore(t *testing.T, flags ...string) *MiniCore {
	t.Helper()

	core, err := NewMiniCore(flags...)
	if err != nil {
		t.Fatalf("NewMiniCore(%v) error = %v", flags, err)
	}

	return core
}

func TestSource_ImplicationClosure(t *testing.T) {
	t.Parallel()

	// Activating extra must transitively activate base, keeping the
	// base-gated line even though base was never declared by the caller.
	core := mustMiniCore(t, "extra")

	src, err := core.Source(testResource)
	if err != nil {
		t.Fatalf("Source() error = %v", err)
	}

	want := "base line // :base\nextra line\nplain line\n"

	if src != want {
		t.Errorf("Source() = %q, want %q", src, want)
	}
}

func TestSource_NoFlags(t *testing.T) {
	t.Parallel()

	core := mustMiniCore(t)

	src, err := core.Source(testResource)
	if err != nil {
		t.Fatalf("Source() error = %v", err)
	}

	if src != "plain line\n" {
		t.Errorf("Source() = %q, want only ungated lines", src)
	}
}

func TestSource_DoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	core := mustMiniCore(t, "extra")

	first, err := core.Source(testResource)
	if err != nil {
		t.Fatalf("first Source() error = %v", err)
	}

	second, err := core.Source(testResource)
	if err != nil {
		t.Fatalf("second Source() error = %v", err)
	}

	if first != second {
		t.Errorf("Source() is not idempotent: %q != %q", first, second)
	}

	if flags := core.Flags(); len(flags) != 1 || flags[0] != "extra" {
		t.Errorf("activated flags mutated: %v", flags)
	}
}

func TestSource_InvalidActivatedFlag(t *testing.T) {
	t.Parallel()

	core := mustMiniCore(t, "bogus")

	_, err := core.Source(testResource)
	if !errors.Is(err, ErrInvalidFlag) {
		t.Fatalf("expected ErrInvalidFlag, got %v", err)
	}
}

func TestSource_ForwardDependency(t *testing.T) {
	t.Parallel()

	resource := `//! Available flags:
//!     early: late
//!     late

early // :early
late // :late
`

	core := mustMiniCore(t)

	_, err := core.Source(resource)
	if !errors.Is(err, ErrInvalidFlag) {
		t.Fatalf("expected ErrInvalidFlag for forward dependency, got %v", err)
	}
}

func TestSource_UnusedFlag(t *testing.T) {
	t.Parallel()

	resource := `//! Available flags:
//!     used
//!     dead

used line // :used
`

	core := mustMiniCore(t, "used")

	_, err := core.Source(resource)
	if !errors.Is(err, ErrUnusedFlag) {
		t.Fatalf("expected ErrUnusedFlag, got %v", err)
	}
}

func TestSource_RegionErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "mismatched end",
			body:    "// region:used\nline\n// endregion:other\n",
			wantErr: ErrRegionMismatch,
		},
		{
			name:    "end without start",
			body:    "line\n// endregion:used\n",
			wantErr: ErrRegionMismatch,
		},
		{
			name:    "name with leading space",
			body:    "// : used\nline\n",
			wantErr: ErrRegionName,
		},
		{
			name:    "undeclared region",
			body:    "// region:unknown\nline\n// endregion:unknown\n",
			wantErr: ErrInvalidFlag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resource := "//! Available flags:\n//!     used\n\n" + tt.body

			core := mustMiniCore(t)

			_, err := core.Source(resource)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Source() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSource_NestedRegionsRequireAllFlags(t *testing.T) {
	t.Parallel()

	resource := `//! Available flags:
//!     outer
//!     inner

// region:outer
outer line
// region:inner
inner line
// endregion:inner
// endregion:outer
`

	tests := []struct {
		name  string
		flags []string
		want  string
	}{
		{
			name:  "both active",
			flags: []string{"outer", "inner"},
			want:  "outer line\ninner line\n",
		},
		{
			name:  "outer only",
			flags: []string{"outer"},
			want:  "outer line\n",
		},
		{
			name:  "inner only keeps nothing nested",
			flags: []string{"inner"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			core := mustMiniCore(t, tt.flags...)

			src, err := core.Source(resource)
			if err != nil {
				t.Fatalf("Source() error = %v", err)
			}

			if src != tt.want {
				t.Errorf("Source() = %q, want %q", src, tt.want)
			}
		})
	}
}

func TestSource_PreambleNotTerminatedByBlank(t *testing.T) {
	t.Parallel()

	resource := "//! Available flags:\n//!     used\nbody // :used\n"

	core := mustMiniCore(t)

	_, err := core.Source(resource)
	if !errors.Is(err, ErrPreamble) {
		t.Fatalf("expected ErrPreamble, got %v", err)
	}
}

func TestDefaultSource_EmbeddedResource(t *testing.T) {
	t.Parallel()

	core := mustMiniCore(t, "iterators")

	src, err := core.DefaultSource()
	if err != nil {
		t.Fatalf("DefaultSource() error = %v", err)
	}

	// iterators implies iterator, fn, and clone; iterator implies option.
	for _, want := range []string{
		"pub trait Iterator",
		"pub struct Repeat",
		"pub trait FnOnce",
		"pub trait Clone",
		"pub enum Option",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("DefaultSource() missing %q", want)
		}
	}

	for _, unwanted := range []string{
		"pub trait DerefMut",
		"pub enum Result",
		"pub trait CoerceUnsized",
	} {
		if strings.Contains(src, unwanted) {
			t.Errorf("DefaultSource() unexpectedly contains %q", unwanted)
		}
	}
}

func TestNewMiniCore_DuplicateFlag(t *testing.T) {
	t.Parallel()

	_, err := NewMiniCore("sized", "sized")
	if !errors.Is(err, ErrDuplicateFlag) {
		t.Fatalf("expected ErrDuplicateFlag, got %v", err)
	}
}
