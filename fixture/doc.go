// Package fixture describes the initial state of a multi-file test workspace
// from a single annotated string.
//
// Fixtures are strings of source text with optional metadata. A fixture
// without metadata parses into a single file at the default path. Metadata is
// added after a "//-" marker; the basic form names a file, which is also how
// a fixture defines multiple files:
//
//	//- /main.rs
//	mod foo;
//	fn main() {
//	    foo::bar();
//	}
//
//	//- /foo.rs
//	pub fn bar() {}
//
// The marker accepts settings describing the workspace around each file:
// compilation units via crate:name, dependency edges via deps:a,b, language
// editions via edition:2021, configuration predicates via cfg:dbg=false,atom,
// environment variables via env:OUTDIR=path,OTHER=foo, and source-root
// boundaries via new_source_root:.
//
//	//- /main.rs crate:a deps:b
//	fn main() { b::f(); }
//	//- /lib.rs crate:b
//	pub fn f() {}
//
// A fixture may also open with a minicore declaration:
//
//	//- minicore: iterator
//
// which resolves a flag-gated subset of the embedded reference resource (a
// curated core-library stand-in, see minicore.rs) for inclusion as one more
// file. Flag implications declared by the resource are activated
// transitively.
//
// All parse failures are fatal and carry structured context (offending line
// index, raw content, or name) as slog attributes on the returned error.
package fixture
