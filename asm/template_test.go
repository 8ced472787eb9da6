package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTemplate(t *testing.T) {
	assert := assert.New(t)

	tpl := NewTemplate("0101aabb", "ab")

	assert.Equal(uint64(0b0101_0000), tpl.Base)
	assert.Equal([]uint64{0b0000_1100, 0b0000_0011}, tpl.Masks)
}

func TestTemplateApply(t *testing.T) {
	assert := assert.New(t)

	tpl := NewTemplate("0101aabb", "ab")

	assert.Equal(uint64(0b0101_1101), tpl.Apply(0b11, 0b01))
	assert.Equal(uint64(0b0101_0111), tpl.Apply(0b01, 0b11))
	assert.Equal(uint64(0b0101_1000), tpl.Apply(0b10, 0b00))
}

func TestTemplateApplyBase(t *testing.T) {
	assert := assert.New(t)

	// All-zero arguments yield exactly the base word.
	tpl := NewTemplate("1a0b1c0d", "abcd")
	assert.Equal(tpl.Base, tpl.Apply(0, 0, 0, 0))
	assert.Equal(tpl.Base, tpl.Apply())
}

func TestTemplateArgOrder(t *testing.T) {
	assert := assert.New(t)

	// Mask order follows argOrder, not pattern appearance.
	tpl := NewTemplate("aabb", "ba")

	assert.Equal([]uint64{0b0011, 0b1100}, tpl.Masks)
	assert.Equal(uint64(0b1001), tpl.Apply(0b01, 0b10))
}

func TestTemplateApplyTruncates(t *testing.T) {
	assert := assert.New(t)

	tpl := NewTemplate("0101aabb", "ab")

	// Extra arguments are ignored; missing arguments encode as zero.
	assert.Equal(uint64(0b0101_1101), tpl.Apply(0b11, 0b01, 0xff, 0xff))
	assert.Equal(uint64(0b0101_1100), tpl.Apply(0b11))
}

func TestDefinitionApply(t *testing.T) {
	assert := assert.New(t)

	add := &Definition{Name: "add", Template: NewTemplate("0011aabb", "ab")}
	assert.Equal(uint64(0b0011_1100), add.Apply(0b11, 0b00))

	// A shifted definition encodes a high slice of its first argument
	// and discards the rest.
	jmp := &Definition{Name: "jmp", Template: NewTemplate("0011aaaa", "a"), Shift: 8}
	assert.Equal(uint64(0b0011_1110), jmp.Apply(0xdead))
	assert.Equal(uint64(0b0011_1110), jmp.Apply(0xdead, 0xffff))
	assert.Equal(uint64(0b0011_0000), jmp.Apply())
}

func TestTableDefine(t *testing.T) {
	assert := assert.New(t)

	tab := Table{}
	add := tab.Define("add", "0011aabb", "ab", 0)
	jmp := tab.Define("jmp", "0011aaaa", "a", 8)

	assert.Same(add, tab["add"])
	assert.Same(jmp, tab["jmp"])
	assert.Equal(uint64(0b0011_0000), add.Template.Base)
	assert.Equal(8, jmp.Shift)
}
