// Package ihex renders and parses checksummed hexadecimal record lines,
// the line-oriented format used to ship machine words to a target device.
package ihex

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Kind is a record type code.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KindData                   = Kind(0) // data
	KindEndOfFile              = Kind(1) // eof
	KindExtendedSegmentAddress = Kind(2) // esa
	KindStartSegmentAddress    = Kind(3) // ssa
	KindExtendedLinearAddress  = Kind(4) // ela
	KindStartLinearAddress     = Kind(5) // sla
)

// Record is a single typed payload at a 16-bit address.
type Record struct {
	Kind Kind
	Addr uint16
	Data []byte
}

// Checksum computes the record checksum: the low byte of the two's
// complement of the 16-bit wrapping sum of the address bytes, the type
// code, the payload length, and every payload byte.
func (rec Record) Checksum() byte {
	var sum uint16

	sum += rec.Addr
	sum += rec.Addr >> 8
	sum += uint16(rec.Kind)
	sum += uint16(len(rec.Data))
	for _, b := range rec.Data {
		sum += uint16(b)
	}

	return byte((sum ^ 0xffff) + 1)
}

// String renders the record line: a colon, then the payload length,
// address, type code, payload, and checksum as fixed-width lowercase hex.
func (rec Record) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, ":%02x%04x%02x", len(rec.Data)&0xff, rec.Addr, int(rec.Kind)&0xff)
	for _, b := range rec.Data {
		fmt.Fprintf(&sb, "%02x", b)
	}
	fmt.Fprintf(&sb, "%02x", rec.Checksum())

	return sb.String()
}

// Parse decodes a record line, validating the declared payload length and
// the trailing checksum.
func Parse(line string) (rec Record, err error) {
	line = strings.TrimSpace(line)
	if len(line) < 11 || line[0] != ':' {
		err = ErrRecordSyntax
		return
	}

	raw, err := hex.DecodeString(line[1:])
	if err != nil {
		err = ErrRecordSyntax
		return
	}

	count := int(raw[0])
	if len(raw) != 5+count {
		err = ErrRecordLength
		return
	}

	rec = Record{
		Kind: Kind(raw[3]),
		Addr: uint16(raw[1])<<8 | uint16(raw[2]),
		Data: raw[4 : 4+count],
	}

	if rec.Checksum() != raw[4+count] {
		err = ErrRecordChecksum
		rec = Record{}
		return
	}

	return rec, nil
}
