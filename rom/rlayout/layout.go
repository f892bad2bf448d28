package rlayout

import (
	"fmt"

	"pxrom/ds"
)

// DirEntryOffset is the byte offset of directory slot i. Slot 0 is the
// header and is not addressable here.
func DirEntryOffset(i int, dirEntries int) int {
	if i < 1 || i > dirEntries-1 {
		panic(fmt.Errorf("DirEntryOffset precondition: slot %d outside 1..%d", i, dirEntries-1))
	}
	return i * EntrySize
}

func FileAreaStart(dirEntries int) int {
	if !IsValidDirEntries(dirEntries) {
		panic(fmt.Errorf("FileAreaStart precondition: invalid dir_entries %d", dirEntries))
	}
	return dirEntries * EntrySize
}

// BlockAddress returns where block n starts. Blocks are numbered from 1.
func BlockAddress(fileAreaStart int, n int) int {
	if n < 1 {
		panic(fmt.Errorf("BlockAddress precondition: block %d is not 1-based", n))
	}
	return fileAreaStart + (n-1)*BlockSize
}

// RoundUpDirEntries turns the highest used slot into the dir_entries value
// written to the header.
func RoundUpDirEntries(highestUsedSlot int) int {
	return ds.NearestDivisibleByM(highestUsedSlot+1, DirEntriesGranularity)
}

// ROMSize maps a header capacity byte to the image size in bytes.
func ROMSize(capacity byte) (int, bool) {
	switch capacity {
	case Capacity64KBit:
		return 0x2000, true
	case Capacity128KBit:
		return 0x4000, true
	case Capacity256KBit:
		return 0x8000, true
	case Capacity512KBit:
		return 0x10000, true
	case Capacity1024KBit:
		return 0x20000, true
	}
	return 0, false
}

// MaxBlocks is how many data blocks fit behind a directory of dirEntries
// slots in an image of romSize bytes.
func MaxBlocks(romSize int, dirEntries int) int {
	return (romSize - dirEntries*EntrySize) / BlockSize
}

// SwapHalves converts between the logical and the physical layout of a
// 27C256 image as wired on the cartridge: the two 16 KiB halves trade
// places. Applying it twice gives the original image back. Images of any
// other size are returned as a copy.
func SwapHalves(image []byte) []byte {
	swapped := make([]byte, len(image))
	if len(image) != SwappedROMSize {
		copy(swapped, image)
		return swapped
	}
	copy(swapped[:halfSize], image[halfSize:])
	copy(swapped[halfSize:], image[:halfSize])
	return swapped
}
