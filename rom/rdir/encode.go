package rdir

import (
	"github.com/pkg/errors"
	"pxrom/rom/lbytes"
	"pxrom/rom/rlayout"
)

func EncodeEntry(entry Entry) ([]byte, error) {
	if len(entry.AllocationMap) > rlayout.AllocationMapSize {
		return nil, errors.Errorf(
			"rdir.EncodeEntry error: %d blocks do not fit in one extent",
			len(entry.AllocationMap),
		)
	}
	fileName, err := lbytes.EncodeFixed(entry.FileName, FileNameSize)
	if err != nil {
		return nil, errors.Wrap(err, "rdir.EncodeEntry error on file_name")
	}
	fileType, err := lbytes.EncodeFixed(entry.FileType, FileTypeSize)
	if err != nil {
		return nil, errors.Wrap(err, "rdir.EncodeEntry error on file_type")
	}

	bs := make([]byte, 0, DefaultEntrySize)
	bs = append(bs, byte(entry.Validity))
	bs = append(bs, fileName...)
	bs = append(bs, fileType...)
	bs = append(bs, byte(entry.LogicalExtent))
	bs = append(bs, lbytes.EncodeValueUint16(entry.Zero)...)
	bs = append(bs, byte(entry.RecordCount))
	allocationMap := make([]byte, rlayout.AllocationMapSize)
	for i, block := range entry.AllocationMap {
		allocationMap[i] = byte(block)
	}
	bs = append(bs, allocationMap...)
	return bs, nil
}

// InvalidEntry is the content of a free slot.
func InvalidEntry() []byte {
	bs := make([]byte, DefaultEntrySize)
	for i := range bs {
		bs[i] = rlayout.EntryInvalid
	}
	return bs
}
