package lbytes

import (
	"bytes"
)

type (
	Reader struct {
		bytes.Reader
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)

const (
	// PaddingByte fills the unused tail of every fixed-width string field.
	PaddingByte = 0x20
)
