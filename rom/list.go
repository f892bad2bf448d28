package rom

import (
	"fmt"

	"github.com/samber/lo"
	"pxrom/ds"
	"pxrom/rom/rdir"
)

// Describe lays the header and the used directory slots out in on-ROM
// order, ready to be dumped as JSON.
func Describe(img *Image) *ds.LinkedHashMap[string, any] {
	header := ds.NewLinkedHashMap[string, any]()
	header.Put("id", fmt.Sprintf("% X", img.Header.ID))
	header.Put("capacity", fmt.Sprintf("0x%02X", img.Header.Capacity))
	header.Put("checksum", img.Header.Checksum)
	header.Put("system_name", img.Header.SystemName)
	header.Put("rom_name", img.Header.ROMName)
	header.Put("dir_entries", img.Header.DirEntries)
	header.Put("version", img.Header.V+img.Header.Version)
	header.Put("date", fmt.Sprintf("%s/%s/%s", img.Header.Month, img.Header.Day, img.Header.Year))

	type slotEntry = lo.Tuple2[int, rdir.Entry]
	used := lo.Filter(
		lo.Map(
			img.Entries,
			func(entry rdir.Entry, i int) slotEntry {
				return lo.T2(i+1, entry)
			},
		),
		func(t slotEntry, _ int) bool {
			return t.B.IsValid()
		},
	)
	entries := lo.Map(
		used,
		func(t slotEntry, _ int) *ds.LinkedHashMap[string, any] {
			entry := ds.NewLinkedHashMap[string, any]()
			entry.Put("slot", t.A)
			entry.Put("file", t.B.FullName())
			entry.Put("logical_extent", t.B.LogicalExtent)
			entry.Put("record_count", t.B.RecordCount)
			entry.Put("blocks", t.B.AllocationMap)
			return entry
		},
	)

	result := ds.NewLinkedHashMap[string, any]()
	result.Put("header", header)
	result.Put("entries", entries)
	return result
}
