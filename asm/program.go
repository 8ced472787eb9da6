package asm

import (
	"iter"
	"slices"
)

// Info carries the bit widths of the target machine.
type Info struct {
	OpcodeBits  uint8 // Width of one emitted word.
	AddressBits uint8 // Width of an address.
}

// Program is a resolved code-object sequence. Addresses runs parallel to
// Objects; Labels maps each label mark to its resolved address. A Program
// is immutable once NewProgram returns.
type Program struct {
	Info      Info
	Objects   []Object
	Addresses []uint64
	Labels    map[string]uint64
}

// NewProgram resolves objects into a Program in two passes.
//
// The first pass assigns addresses: the sequence must open with an
// AddressMark seeding the counter, or ErrStartAddress is returned. Each
// object records the counter value before it is processed; instructions
// and raw words then advance the counter by one, an address mark resets it
// for the objects that follow, and a label mark leaves it unchanged.
//
// The second pass builds the label table, returning ErrDuplicateLabel when
// two marks share a name.
func NewProgram(info Info, objects []Object) (*Program, error) {
	if len(objects) == 0 {
		return nil, ErrStartAddress
	}
	start, ok := objects[0].(AddressMark)
	if !ok {
		return nil, ErrStartAddress
	}

	offset := uint64(start)
	addresses := make([]uint64, 0, len(objects))
	for _, obj := range objects {
		addresses = append(addresses, offset)
		switch obj := obj.(type) {
		case AddressMark:
			offset = uint64(obj)
		case Instruction, RawWord:
			offset += 1
		case LabelMark:
			// no words emitted
		}
	}

	labels := make(map[string]uint64)
	for n, obj := range objects {
		label, ok := obj.(LabelMark)
		if !ok {
			continue
		}
		if _, ok := labels[string(label)]; ok {
			return nil, ErrDuplicateLabel(label)
		}
		labels[string(label)] = addresses[n]
	}

	return &Program{
		Info:      info,
		Objects:   slices.Clone(objects),
		Addresses: addresses,
		Labels:    labels,
	}, nil
}

// Walk iterates the program's objects in order, paired with their resolved
// addresses.
func (prog *Program) Walk() iter.Seq2[uint64, Object] {
	return func(yield func(addr uint64, obj Object) bool) {
		for n, obj := range prog.Objects {
			if !yield(prog.Addresses[n], obj) {
				return
			}
		}
	}
}

// At returns the word-emitting object resolved to addr, or false when no
// instruction or raw word lands there.
func (prog *Program) At(addr uint64) (Object, bool) {
	for n, obj := range prog.Objects {
		switch obj.(type) {
		case Instruction, RawWord:
			if prog.Addresses[n] == addr {
				return obj, true
			}
		}
	}

	return nil, false
}
