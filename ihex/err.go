package ihex

import (
	"errors"

	"github.com/hexlab/retasm/translate"
)

var f = translate.From

var (
	ErrRecordSyntax   = errors.New(f("record syntax"))
	ErrRecordLength   = errors.New(f("record length"))
	ErrRecordChecksum = errors.New(f("record checksum"))
)
