// Package ipdl implements the semantic analyzer of an IPDL compiler.
//
// Call [Check] with a set of parsed translation units (see package ast)
// to build a typed [model.Program]: symbol resolution across files,
// construction of typed structs/unions/protocols/messages, and the static
// validations that enforce IPDL's semantic rules. The analyzer never
// parses source and never generates code; it sits between a parser and a
// code generator.
package ipdl

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ipdl-lang/ipdlc/ast"
	"github.com/ipdl-lang/ipdlc/internal/checker"
	"github.com/ipdl-lang/ipdlc/internal/types"
	"github.com/ipdl-lang/ipdlc/model"
)

// Diagnostic is a single analyzer finding.
type Diagnostic = ast.Diagnostic

// LevelTrace is a custom log level more verbose than Debug. The checker's
// phases emit no log records at this or any other level.
const LevelTrace = types.LevelTrace

// ErrNoTranslationUnits is returned when Check is called with an empty input set.
var ErrNoTranslationUnits = errors.New("no translation units provided")

// ErrFilenameMismatch is returned when a protocol-defining translation
// unit's source path does not match its protocol name; this check is
// fatal rather than accumulated, since it reflects a file-layout problem
// rather than a single bad declaration.
var ErrFilenameMismatch = errors.New("translation unit filename does not match its protocol")

// CheckError reports one or more diagnostics accumulated while checking a
// set of translation units. The typed Program is still returned alongside
// this error: phase 2's partial model and phase 3's validation both still
// run to completion, so callers that want every diagnostic at once, not
// just the first, can inspect both.
type CheckError struct {
	Diagnostics []Diagnostic
}

func (e *CheckError) Error() string {
	if len(e.Diagnostics) == 1 {
		return e.Diagnostics[0].String()
	}
	return fmt.Sprintf("%d diagnostics (first: %s)", len(e.Diagnostics), e.Diagnostics[0].String())
}

// CheckOption configures Check.
type CheckOption func(*checkConfig)

type checkConfig struct {
	logger         *slog.Logger
	checkFilenames bool
}

// WithLogger sets the logger handed to the checker's context. The
// checker's phases do not write any log records to it.
func WithLogger(logger *slog.Logger) CheckOption {
	return func(c *checkConfig) { c.logger = logger }
}

// WithFilenameCheck enables the check that a protocol-defining translation
// unit's source path basename matches "<Protocol>.ipdl". Off by default,
// since callers that synthesize translation units (tests, the YAML/JSON
// CLI input format) often have no meaningful file path.
func WithFilenameCheck(enabled bool) CheckOption {
	return func(c *checkConfig) { c.checkFilenames = enabled }
}

// Check runs the three-phase analyzer pipeline over tus and returns the
// resulting typed program. If any diagnostics were accumulated across the
// run, it returns a non-nil *CheckError alongside the (possibly partial)
// program; ErrFilenameMismatch is returned instead, without a program, if
// filename checking is enabled and fails (a fatal, non-accumulated error).
func Check(tus map[model.TUId]*ast.TranslationUnit, opts ...CheckOption) (*model.Program, error) {
	if len(tus) == 0 {
		return nil, ErrNoTranslationUnits
	}

	cfg := checkConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.checkFilenames {
		for _, tu := range tus {
			if err := checker.CheckFilename(tu); err != nil {
				return nil, fmt.Errorf("%w: %s", ErrFilenameMismatch, err)
			}
		}
	}

	ctx := checker.NewContext(tus, types.Logger{L: cfg.logger}, cfg.checkFilenames)
	ctx.Run()

	diags := ctx.Diagnostics()
	if len(diags) > 0 {
		return ctx.Prog, &CheckError{Diagnostics: diags}
	}
	return ctx.Prog, nil
}
