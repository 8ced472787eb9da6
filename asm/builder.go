package asm

import (
	"maps"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Builder accumulates a code-object sequence for NewProgram. Values may be
// given as literals or as define expressions evaluated at build time; the
// first evaluation failure is remembered and reported by Build, so call
// chains stay unconditional.
type Builder struct {
	defines starlark.StringDict
	objects []Object
	err     error
}

// Predefine binds a named constant usable in later expressions. Redefining
// a name replaces its value.
func (b *Builder) Predefine(name string, value uint64) {
	if b.defines == nil {
		b.defines = starlark.StringDict{}
	}
	b.defines[name] = starlark.MakeUint64(value)
}

// Eval evaluates a define expression to a word value.
func (b *Builder) Eval(expr string) (value uint64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	maps.Copy(pred, b.defines)

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return 0, ErrExpr{Expr: expr, Err: err}
	}

	st_rc, ok := dict["rc"]
	if !ok {
		return 0, ErrExpr{Expr: expr, Err: ErrExprValue}
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		return 0, ErrExpr{Expr: expr, Err: ErrExprValue}
	}

	if v64, ok := st_int.Int64(); ok {
		return uint64(v64), nil
	}
	if u64, ok := st_int.Uint64(); ok {
		return u64, nil
	}

	return 0, ErrExpr{Expr: expr, Err: ErrExprValue}
}

// eval is Eval with the failure deferred to Build.
func (b *Builder) eval(expr string) uint64 {
	value, err := b.Eval(expr)
	if err != nil && b.err == nil {
		b.err = err
	}
	return value
}

// Address appends an address mark.
func (b *Builder) Address(addr uint64) *Builder {
	b.objects = append(b.objects, AddressMark(addr))
	return b
}

// Label appends a label mark.
func (b *Builder) Label(name string) *Builder {
	b.objects = append(b.objects, LabelMark(name))
	return b
}

// Word appends a raw word.
func (b *Builder) Word(value uint64) *Builder {
	b.objects = append(b.objects, RawWord(value))
	return b
}

// WordExpr appends a raw word computed from a define expression.
func (b *Builder) WordExpr(expr string) *Builder {
	return b.Word(b.eval(expr))
}

// Op appends an instruction.
func (b *Builder) Op(def *Definition, args ...Arg) *Builder {
	b.objects = append(b.objects, Instruction{Def: def, Args: args})
	return b
}

// OpExpr appends an instruction whose arguments are define expressions.
func (b *Builder) OpExpr(def *Definition, exprs ...string) *Builder {
	args := make([]Arg, 0, len(exprs))
	for _, expr := range exprs {
		args = append(args, Literal(b.eval(expr)))
	}
	return b.Op(def, args...)
}

// Objects returns the accumulated sequence.
func (b *Builder) Objects() []Object {
	return b.objects
}

// Build resolves the accumulated sequence into a Program, reporting any
// deferred expression failure first.
func (b *Builder) Build(info Info) (*Program, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewProgram(info, b.objects)
}
