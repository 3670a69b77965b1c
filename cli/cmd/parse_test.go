package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/fixtool/fixture"
)

func TestSelectFiles(t *testing.T) {
	files := []fixture.Fixture{
		{Path: "/main.rs", Crate: "main", Deps: []string{"foo"}},
		{Path: "/foo/lib.rs", Crate: "foo"},
		{Path: "/bar/lib.rs", Crate: "bar"},
	}

	tests := []struct {
		name string
		expr string
		want []string
	}{
		{
			name: "by crate",
			expr: `Crate == "foo"`,
			want: []string{"/foo/lib.rs"},
		},
		{
			name: "by path prefix",
			expr: `Path startsWith "/main"`,
			want: []string{"/main.rs"},
		},
		{
			name: "by dependency",
			expr: `"foo" in Deps`,
			want: []string{"/main.rs"},
		},
		{
			name: "match all",
			expr: `true`,
			want: []string{"/main.rs", "/foo/lib.rs", "/bar/lib.rs"},
		},
		{
			name: "match none",
			expr: `Edition == "2015"`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectFiles(files, tt.expr)
			if err != nil {
				t.Fatalf("selectFiles(%q): %v", tt.expr, err)
			}

			paths := make([]string, 0, len(got))
			for _, f := range got {
				paths = append(paths, f.Path)
			}

			if len(paths) != len(tt.want) {
				t.Fatalf("got %v, want %v", paths, tt.want)
			}

			for i := range paths {
				if paths[i] != tt.want[i] {
					t.Errorf("got %v, want %v", paths, tt.want)

					break
				}
			}
		})
	}
}

func TestSelectFilesBadExpression(t *testing.T) {
	_, err := selectFiles(nil, `Crate ==`)
	if !errors.Is(err, ErrSelectExpr) {
		t.Fatalf("expected ErrSelectExpr, got %v", err)
	}
}

func TestParseWriteJSON(t *testing.T) {
	p := Parse{Format: "json", Indent: 2}

	var buf bytes.Buffer

	files := []fixture.Fixture{{Path: "/main.rs", Text: "fn main() {}\n"}}
	if err := p.write(&buf, files); err != nil {
		t.Fatalf("write: %v", err)
	}

	var decoded []fixture.Fixture
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if len(decoded) != 1 || decoded[0].Path != "/main.rs" {
		t.Errorf("decoded %+v", decoded)
	}
}

func TestParseWriteYAML(t *testing.T) {
	p := Parse{Format: "yaml", Indent: 2}

	var buf bytes.Buffer

	files := []fixture.Fixture{{Path: "/main.rs", Crate: "main"}}
	if err := p.write(&buf, files); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "path: /main.rs") {
		t.Errorf("missing path in YAML output:\n%s", out)
	}

	if !strings.Contains(out, "crate: main") {
		t.Errorf("missing crate in YAML output:\n%s", out)
	}
}

func TestCheckRunValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.txt")

	text := "//- minicore: option\n//- /main.rs\nfn main() {}\n"
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	c := Check{Sources: []string{path}}
	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("check of valid fixture failed: %v", err)
	}
}

func TestCheckRunInvalid(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.txt")
	if err := os.WriteFile(good, []byte("//- /lib.rs\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Unknown minicore flag fails resolution against the reference resource.
	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(
		bad, []byte("//- minicore: no_such_flag\n//- /lib.rs\n"), 0o644,
	); err != nil {
		t.Fatal(err)
	}

	c := Check{Sources: []string{good, bad}}

	err := c.Run(context.Background())
	if !errors.Is(err, ErrCheckFailed) {
		t.Fatalf("expected ErrCheckFailed, got %v", err)
	}
}

func TestCoreRunDuplicateFlag(t *testing.T) {
	c := Core{Flags: []string{"option", "option"}}
	if err := c.Run(context.Background()); err == nil {
		t.Fatal("expected error for duplicate flag")
	}
}
