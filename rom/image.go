package rom

import (
	"github.com/pkg/errors"
	"pxrom/rom/lbytes"
	"pxrom/rom/rdir"
	"pxrom/rom/rheader"
	"pxrom/rom/rlayout"
)

type (
	// Image is a ROM in logical address order with its directory decoded.
	// Entries holds slots 1 to dir_entries-1; slot 0 is Header.
	Image struct {
		Header  rheader.Header
		Entries []rdir.Entry
		data    []byte
	}
)

// Parse undoes the 27C256 address swap when the image is 0x8000 bytes long
// and decodes the header and the directory.
func Parse(image []byte) (*Image, error) {
	logical := rlayout.SwapHalves(image)
	if len(logical) < rheader.DefaultHeaderSize || !rheader.IsValidMagicNumber(logical) {
		return nil, errors.WithStack(ErrNotARom)
	}

	reader := lbytes.NewBytesReader(logical)
	header, err := rheader.Decode(reader)
	if err != nil {
		return nil, errors.Wrapf(ErrNotARom, "%v", err)
	}
	if !rlayout.IsValidDirEntries(header.DirEntries) {
		return nil, errors.Wrapf(ErrCorruptDirectory, "dir_entries is %d", header.DirEntries)
	}
	if header.DirEntries*rlayout.EntrySize > len(logical) {
		return nil, errors.Wrapf(
			ErrCorruptDirectory,
			"%d directory slots do not fit in %d bytes",
			header.DirEntries, len(logical),
		)
	}

	entries, err := rdir.DecodeBlock(reader, header.DirEntries)
	if err != nil {
		return nil, errors.Wrapf(ErrCorruptDirectory, "%v", err)
	}

	return &Image{
		Header:  *header,
		Entries: entries,
		data:    logical,
	}, nil
}

// Block returns the 1024 bytes of block n.
func (i *Image) Block(n int) ([]byte, error) {
	if !rlayout.IsValidBlock(len(i.data), i.Header.DirEntries, n) {
		return nil, errors.Wrapf(ErrCorruptDirectory, "block %d is outside the file area", n)
	}
	start := rlayout.BlockAddress(rlayout.FileAreaStart(i.Header.DirEntries), n)
	return i.data[start : start+rlayout.BlockSize], nil
}

// Slot returns the directory entry of slot n, counting the header as 0.
func (i *Image) Slot(n int) rdir.Entry {
	// only checks the precondition, the entries are already decoded
	_ = rlayout.DirEntryOffset(n, i.Header.DirEntries)
	return i.Entries[n-1]
}
