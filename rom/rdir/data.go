package rdir

type (
	// Entry is one extent of one logical file. AllocationMap lists the
	// 1-based blocks of the extent in order; the on-ROM map is padded with
	// zeroes up to sixteen slots.
	Entry struct {
		Validity      int    `json:"validity"`
		FileName      string `json:"file_name"`
		FileType      string `json:"file_type"`
		LogicalExtent int    `json:"logical_extent"`
		Zero          int    `json:"zero"`
		RecordCount   int    `json:"record_count"`
		AllocationMap []int  `json:"allocation_map"`
	}
)

const (
	DefaultEntrySize = 32

	FileNameSize = 8
	FileTypeSize = 3
)
