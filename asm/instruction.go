package asm

// Definition names an encoding template, optionally pre-shifting its first
// argument. A non-zero Shift slices the high bits out of a wide operand so
// one logical value can span several emitted words, each word encoding a
// different slice.
type Definition struct {
	Name     string
	Template Template
	Shift    int
}

// Apply encodes args into a machine word. With Shift zero all arguments
// pass straight to the template; otherwise only the first argument is
// used, shifted right by Shift bits, and the rest are discarded.
func (def *Definition) Apply(args ...uint64) uint64 {
	if def.Shift == 0 {
		return def.Template.Apply(args...)
	}

	var arg uint64
	if len(args) > 0 {
		arg = args[0] >> def.Shift
	}
	return def.Template.Apply(arg)
}

// Table is a caller-owned instruction set, mapping mnemonic to definition.
// Definitions are shared immutable handles; a Program holds pointers into
// the table and never copies or mutates them.
type Table map[string]*Definition

// Define compiles pattern and argOrder into a template and adds the named
// definition to the table, replacing any previous definition of the same
// name.
func (tab Table) Define(name, pattern, argOrder string, shift int) *Definition {
	def := &Definition{
		Name:     name,
		Template: NewTemplate(pattern, argOrder),
		Shift:    shift,
	}
	tab[name] = def
	return def
}
