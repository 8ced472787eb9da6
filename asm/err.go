package asm

import (
	"errors"

	"github.com/hexlab/retasm/translate"
)

var f = translate.From

var (
	// ErrStartAddress reports a code-object sequence that does not open
	// with an AddressMark, leaving the assembler without an initial
	// address.
	ErrStartAddress = errors.New(f("program must start with an address mark"))

	// ErrExprValue reports a define expression that did not evaluate to
	// an integer.
	ErrExprValue = errors.New(f("expression is not an integer"))
)

// ErrDuplicateLabel reports a label name marked more than once.
type ErrDuplicateLabel string

func (el ErrDuplicateLabel) Error() string {
	return f("label %v duplicated", string(el))
}

// ErrLabelMissing reports a label reference with no matching label mark.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrExpr reports a define expression that failed to evaluate.
type ErrExpr struct {
	Expr string
	Err  error
}

func (err ErrExpr) Error() string {
	return f("$(%v) is not a valid expression: %v", err.Expr, err.Err)
}

func (err ErrExpr) Unwrap() error {
	return err.Err
}
