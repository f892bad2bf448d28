// Package rlayout holds the fixed geometry of an M-format ROM image: where
// the directory ends, where each block starts, and how a 27C256 image is
// wired on the cartridge.
package rlayout

const (
	EntrySize  = 32
	BlockSize  = 1024
	RecordSize = 128
	// RecordsPerBlock is the record_count increment for each allocated block.
	RecordsPerBlock = BlockSize / RecordSize
	// AllocationMapSize is the number of block slots in one directory entry.
	AllocationMapSize = 16
	// RecordsPerExtent is the record_count of a completely filled entry.
	RecordsPerExtent = AllocationMapSize * RecordsPerBlock

	// MaxDirEntries counts the header slot as well.
	MaxDirEntries = 0x20
	// DirEntriesGranularity is what dir_entries is rounded up to.
	DirEntriesGranularity = 4
)

const (
	Magic   byte = 0xE5
	FormatM byte = 0x37
	// FormatP is executed in place from ROM and is not supported.
	FormatP byte = 0x50
)

const (
	Capacity64KBit   byte = 0x08
	Capacity128KBit  byte = 0x10
	Capacity256KBit  byte = 0x20
	Capacity512KBit  byte = 0x40
	Capacity1024KBit byte = 0x80
)

const (
	EntryValid   byte = 0x00
	EntryInvalid byte = 0xE5
	// Erased is the content of unprogrammed PROM cells.
	Erased byte = 0xFF
)

const (
	// SwappedROMSize is the image size that gets its halves exchanged.
	SwappedROMSize = 0x8000
	halfSize       = SwappedROMSize / 2
)
