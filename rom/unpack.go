package rom

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"pxrom/ds"
	"pxrom/logging"
	"pxrom/rom/rdir"
	"pxrom/rom/rlayout"
)

type (
	Unpacker struct {
		logger hclog.Logger
	}
)

func NewUnpacker(logger hclog.Logger) *Unpacker {
	return &Unpacker{
		logger: logging.OrNull(logger),
	}
}

// Unpack reassembles the logical files of a ROM image in directory order.
func (u *Unpacker) Unpack(image []byte) ([]File, error) {
	img, err := Parse(image)
	if err != nil {
		return nil, err
	}
	u.logger.Debug("parsed header", "header", ds.DumpJSON(img.Header))

	files := make([]File, 0)
	var open *File
	var openEntry, lastEntry rdir.Entry
	expectedExtent := 0
	for slot := 1; slot < img.Header.DirEntries; slot++ {
		entry := img.Slot(slot)
		if !entry.IsValid() {
			continue
		}

		if entry.LogicalExtent == 0 {
			if open != nil {
				files = append(files, *open)
			}
			open = &File{
				Name: entry.FileName,
				Type: entry.FileType,
				Data: make([]byte, 0),
			}
			openEntry = entry
		} else {
			if open == nil {
				u.logger.Warn("continuation extent without a first extent, skipped",
					"slot", slot, "file", entry.FullName(), "extent", entry.LogicalExtent)
				continue
			}
			if !entry.SameFile(openEntry) {
				u.logger.Warn("continuation extent belongs to another file",
					"slot", slot, "file", entry.FullName(), "open", open.FullName())
			}
			if entry.LogicalExtent != expectedExtent {
				u.logger.Warn("unexpected logical extent",
					"slot", slot, "file", open.FullName(), "expected", expectedExtent, "got", entry.LogicalExtent)
			}
			if lastEntry.RecordCount != rlayout.RecordsPerExtent {
				u.logger.Warn("continuation extent follows a partly filled extent",
					"slot", slot, "file", open.FullName(), "record_count", lastEntry.RecordCount)
			}
		}
		expectedExtent = entry.LogicalExtent + 1
		lastEntry = entry

		for _, n := range entry.AllocationMap {
			block, err := img.Block(n)
			if err != nil {
				return nil, errors.Wrapf(err, "slot %d (%s)", slot, entry.FullName())
			}
			open.Data = append(open.Data, block...)
		}
		open.Extents++
	}
	if open != nil {
		files = append(files, *open)
	}

	return files, nil
}

// DumpFile unpacks the ROM at romPath into outDir and returns the paths it
// wrote. Existing files are only replaced when force is set; the check is
// made for every file before anything is written, and so is the check that
// every name is a plain 8.3 name.
func (u *Unpacker) DumpFile(romPath string, outDir string, force bool) ([]string, error) {
	image, err := os.ReadFile(romPath)
	if err != nil {
		return nil, errors.Wrapf(ErrInputOpenFailed, "%q: %v", romPath, err)
	}
	files, err := u.Unpack(image)
	if err != nil {
		return nil, errors.Wrapf(err, "%q", romPath)
	}
	// names come from the image and must not leave outDir
	for _, file := range files {
		if _, _, err := rdir.Split83(file.FullName()); err != nil {
			return nil, errors.Wrapf(ErrCorruptDirectory, "%q: %v", romPath, err)
		}
	}

	paths := lo.Map(
		files,
		func(file File, _ int) string {
			return filepath.Join(outDir, file.FullName())
		},
	)
	duplicates := lo.Filter(
		paths,
		func(path string, i int) bool {
			return lo.IndexOf(paths, path) != i
		},
	)
	for _, path := range lo.Uniq(duplicates) {
		u.logger.Warn("name is used by more than one file, the last one wins", "path", path)
	}
	if !force {
		for _, path := range paths {
			if fileExists(path) {
				return nil, errors.Wrapf(ErrOutputExists, "%q", path)
			}
		}
	}

	for i, file := range files {
		if err := os.WriteFile(paths[i], file.Data, 0644); err != nil {
			return nil, errors.Wrapf(ErrOutputWriteFailed, "%q: %v", paths[i], err)
		}
		u.logger.Info("extracted file", "path", paths[i], "bytes", len(file.Data), "extents", file.Extents)
	}

	return lo.Uniq(paths), nil
}
