package rdir

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"pxrom/ds"
	"pxrom/rom/lbytes"
	"pxrom/rom/rlayout"
)

func DecodeEntry(reader *lbytes.Reader) (*Entry, error) {
	readUint8 := lbytes.CreateUint8ReadFunction(reader)

	instructions := []lbytes.Instruction{
		{Key: "validity", ReadFunction: readUint8},
		{Key: "file_name", ReadFunction: lbytes.CreateFixedStringReadFunction(reader, FileNameSize)},
		{Key: "file_type", ReadFunction: lbytes.CreateFixedStringReadFunction(reader, FileTypeSize)},
		{Key: "logical_extent", ReadFunction: readUint8},
		{Key: "zero", ReadFunction: lbytes.CreateUint16ReadFunction(reader)},
		{Key: "record_count", ReadFunction: readUint8},
		{Key: "allocation_map", ReadFunction: lbytes.CreateUint8SliceReadFunction(reader, rlayout.AllocationMapSize)},
	}
	entry, err := lbytes.ExecuteInstructions[Entry](instructions)
	if err != nil {
		err := errors.Wrap(err, "DecodeEntry error")
		return nil, err
	}
	entry.AllocationMap = TrimAllocationMap(entry.AllocationMap)

	return entry, nil
}

// DecodeBlock reads the numEntries-1 slots that follow the header.
func DecodeBlock(reader *lbytes.Reader, numEntries int) ([]Entry, error) {
	entries := make([]Entry, 0, numEntries)
	for i := 1; i < numEntries; i++ {
		entry, err := DecodeEntry(reader)
		if err != nil {
			err := errors.Wrapf(err, "rdir.DecodeBlock error on slot %d", i)
			return nil, err
		}
		if entry == nil {
			return nil, ds.ErrUnreachableCode{Caller: "rdir.DecodeBlock"}
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}

// TrimAllocationMap cuts the map at its first zero, which terminates it.
func TrimAllocationMap(allocationMap []int) []int {
	end := lo.IndexOf(allocationMap, 0)
	if end < 0 {
		return allocationMap
	}
	return allocationMap[:end]
}

func (e Entry) IsValid() bool {
	return e.Validity == int(rlayout.EntryValid)
}
