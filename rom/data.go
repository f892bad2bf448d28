// Package rom builds and takes apart M-format ROM images for Epson PX-8,
// PX-4 and EHT-10 ROM capsules.
package rom

import (
	"fmt"

	"github.com/pkg/errors"
	"pxrom/rom/rdir"
	"pxrom/rom/rlayout"
)

var (
	ErrUsage               = errors.New("wrong number of arguments")
	ErrOutputExists        = errors.New("output file already exists")
	ErrInputOpenFailed     = errors.New("failed to open input file")
	ErrOutputWriteFailed   = errors.New("failed to write output file")
	ErrBadFileName         = rdir.ErrBadFileName
	ErrEmptyInput          = errors.New("input file is empty")
	ErrOutOfDirectorySpace = errors.New("out of directory space")
	ErrOutOfROMSpace       = errors.New("out of ROM space")
	ErrNotARom             = errors.New("not a valid rom file")
	ErrCorruptDirectory    = errors.New("corrupt directory")
)

type (
	// Config carries the header values the packer does not derive from
	// its inputs.
	Config struct {
		Format     byte
		Capacity   byte
		SystemName string
		Version    string
		Month      string
		Day        string
		Year       string
	}
	InputFile struct {
		// Name is the flat 8.3 host name the file is stored under.
		Name string
		Data []byte
	}
	// File is a logical file recovered from a ROM. Data keeps the padding
	// up to the next block boundary since the format does not record the
	// original length.
	File struct {
		Name    string
		Type    string
		Data    []byte
		Extents int
	}
)

const (
	MaxROMNameLength = 14
)

func DefaultConfig() Config {
	return Config{
		Format:     rlayout.FormatM,
		Capacity:   rlayout.Capacity256KBit,
		SystemName: "H80",
		Version:    "10",
		Month:      "11",
		Day:        "16",
		Year:       "20",
	}
}

func (f File) FullName() string {
	return fmt.Sprintf("%s.%s", f.Name, f.Type)
}
