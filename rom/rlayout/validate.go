package rlayout

func IsValidMagicNumber(id []byte) bool {
	return len(id) == 2 && id[0] == Magic && id[1] == FormatM
}

func IsValidDirEntries(dirEntries int) bool {
	return dirEntries >= DirEntriesGranularity &&
		dirEntries <= MaxDirEntries &&
		dirEntries%DirEntriesGranularity == 0
}

func IsValidBlock(romSize int, dirEntries int, n int) bool {
	return n >= 1 && n <= MaxBlocks(romSize, dirEntries)
}
