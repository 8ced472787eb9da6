package asm

// Object is one element of a program's code sequence: an instruction to
// encode, a raw word to emit verbatim, or an address or label directive.
// The set of implementations is closed.
type Object interface {
	isObject()
}

// Instruction applies a definition to arguments, emitting one word.
type Instruction struct {
	Def  *Definition
	Args []Arg
}

// RawWord is a literal word emitted verbatim.
type RawWord uint64

// AddressMark resets the running address counter for subsequent objects.
type AddressMark uint64

// LabelMark names the current address.
type LabelMark string

func (Instruction) isObject() {}
func (RawWord) isObject()     {}
func (AddressMark) isObject() {}
func (LabelMark) isObject()   {}

// Arg is an instruction argument: either a literal value or a symbolic
// label reference resolved at emission time.
type Arg interface {
	isArg()
}

// Literal is an immediate argument value.
type Literal uint64

// LabelRef is a symbolic argument naming a label. Offset is added to the
// label's address; with Relative set the referencing word's own address is
// subtracted, yielding a displacement.
type LabelRef struct {
	Name     string
	Relative bool
	Offset   int
}

func (Literal) isArg()  {}
func (LabelRef) isArg() {}
