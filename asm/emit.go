package asm

import (
	"github.com/hexlab/retasm/bitop"
	"github.com/hexlab/retasm/ihex"
)

// Settings controls hex record emission.
type Settings struct {
	WordsPerRecord int         // Words packed into one data record.
	EOF            ihex.Record // Final record terminating the stream.
}

// DefaultSettings emits four words per data record and a standard
// end-of-file record.
var DefaultSettings = Settings{
	WordsPerRecord: 4,
	EOF:            ihex.Record{Kind: ihex.KindEndOfFile},
}

// Resolve turns an instruction argument into its literal value. A label
// reference resolves to the label's address plus the reference offset;
// with Relative set, the address of the referencing word (site) is
// subtracted, yielding a displacement. A reference to an unknown label
// returns ErrLabelMissing.
func (prog *Program) Resolve(arg Arg, site uint64) (uint64, error) {
	switch arg := arg.(type) {
	case Literal:
		return uint64(arg), nil
	case LabelRef:
		target, ok := prog.Labels[arg.Name]
		if !ok {
			return 0, ErrLabelMissing(arg.Name)
		}
		value := int64(target) + int64(arg.Offset)
		if arg.Relative {
			value -= int64(site)
		}
		return uint64(value), nil
	}

	return 0, nil
}

// word encodes the object at index n, reporting false for marks that emit
// nothing.
func (prog *Program) word(n int) (word uint64, ok bool, err error) {
	switch obj := prog.Objects[n].(type) {
	case RawWord:
		return uint64(obj), true, nil
	case Instruction:
		vals := make([]uint64, 0, len(obj.Args))
		for _, arg := range obj.Args {
			val, err := prog.Resolve(arg, prog.Addresses[n])
			if err != nil {
				return 0, false, err
			}
			vals = append(vals, val)
		}
		return obj.Def.Apply(vals...), true, nil
	}

	return 0, false, nil
}

// Records encodes the program's words as checksummed hex records. Words
// are serialized least significant byte first, ceil(OpcodeBits/8) bytes
// each; a data record's address is the word address scaled to bytes,
// truncated to 16 bits. Up to WordsPerRecord contiguous words share one
// record, a fresh record starts at every address discontinuity, and the
// EOF record is appended last.
func (prog *Program) Records(set Settings) (recs []ihex.Record, err error) {
	if set.WordsPerRecord <= 0 {
		set.WordsPerRecord = DefaultSettings.WordsPerRecord
	}
	span := (int(prog.Info.OpcodeBits) + 7) / 8

	var data []byte
	var first uint64 // word address of data[0]
	var next uint64  // expected address of the next word

	flush := func() {
		if len(data) == 0 {
			return
		}
		recs = append(recs, ihex.Record{
			Kind: ihex.KindData,
			Addr: uint16(first * uint64(span)),
			Data: data,
		})
		data = nil
	}

	for n := range prog.Objects {
		word, ok, err := prog.word(n)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		addr := prog.Addresses[n]
		if len(data) > 0 && addr != next {
			flush()
		}
		if len(data) == 0 {
			first = addr
		}

		data = append(data, bitop.ToBytes(word, span)...)
		next = addr + 1

		if len(data) >= set.WordsPerRecord*span {
			flush()
		}
	}
	flush()

	recs = append(recs, set.EOF)

	return recs, nil
}
