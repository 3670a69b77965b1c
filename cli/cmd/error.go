package cmd

import "github.com/ardnew/fixtool/fixture"

// Sentinel errors for the command surface. Each carries structured logging
// context via [fixture.Error] and can be tested with errors.Is.
var (
	ErrReadSource  = fixture.NewError("read source input")
	ErrJSONMarshal = fixture.NewError("marshal JSON")
	ErrYAMLMarshal = fixture.NewError("marshal YAML")
	ErrSelectExpr  = fixture.NewError("evaluate select expression")
	ErrCheckFailed = fixture.NewError("fixture validation failed")
)
