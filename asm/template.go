package asm

import (
	"github.com/hexlab/retasm/bitop"
)

// Template is a compiled bit-pattern producing a machine word from
// argument values. Base carries the pattern's literal one bits; Masks holds
// one scatter mask per argument, in the order arguments are supplied to
// Apply.
type Template struct {
	Base  uint64
	Masks []uint64
}

// NewTemplate compiles a positional bit pattern into a Template. The
// pattern is read most significant bit first; '1' contributes to the base
// word and any other character contributes zero. argOrder lists the
// distinct argument letters of the pattern and fixes the order Apply
// expects their values in, independent of where the letters first appear.
func NewTemplate(pattern, argOrder string) Template {
	var base uint64
	for _, ch := range []byte(pattern) {
		base <<= 1
		if ch == '1' {
			base |= 1
		}
	}

	masks := make([]uint64, 0, len(argOrder))
	for _, arg := range []byte(argOrder) {
		var mask uint64
		for _, ch := range []byte(pattern) {
			mask <<= 1
			if ch == arg {
				mask |= 1
			}
		}
		masks = append(masks, mask)
	}

	return Template{Base: base, Masks: masks}
}

// Apply scatters each argument through its mask and ORs the results into
// the base word. Arguments are paired with masks positionally; if the
// counts differ, the extra arguments or masks are ignored.
func (tpl Template) Apply(args ...uint64) uint64 {
	word := tpl.Base
	for n, mask := range tpl.Masks {
		if n >= len(args) {
			break
		}
		word |= bitop.Scatter(mask, args[n])
	}
	return word
}
