package rom

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"pxrom/ds"
	"pxrom/logging"
	"pxrom/rom/rdir"
	"pxrom/rom/rheader"
	"pxrom/rom/rlayout"
)

type (
	Packer struct {
		config Config
		logger hclog.Logger
	}
	// builder accumulates the directory and the file area while files are
	// placed one at a time.
	builder struct {
		config    Config
		romSize   int
		entries   []rdir.Entry
		fileArea  []byte
		nextBlock int
		logger    hclog.Logger
	}
)

func NewPacker(config Config, logger hclog.Logger) *Packer {
	return &Packer{
		config: config,
		logger: logging.OrNull(logger),
	}
}

func (p *Packer) newBuilder() (*builder, error) {
	romSize, ok := rlayout.ROMSize(p.config.Capacity)
	if !ok {
		return nil, errors.Errorf("NewPacker error: unknown capacity 0x%02X", p.config.Capacity)
	}
	return &builder{
		config:    p.config,
		romSize:   romSize,
		entries:   make([]rdir.Entry, 0, rlayout.MaxDirEntries-1),
		fileArea:  make([]byte, 0, romSize),
		nextBlock: 1,
		logger:    p.logger,
	}, nil
}

// Build lays files out in the given order and returns the image as it
// should be burnt, after the address swap for 256 kbit devices.
func (p *Packer) Build(romName string, files []InputFile) ([]byte, error) {
	b, err := p.newBuilder()
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if err := b.place(file); err != nil {
			return nil, err
		}
	}
	return b.finish(romName)
}

// PackFile writes a new ROM image to outPath from the files at inputPaths.
// Each input path is also the 8.3 name it is stored under, so it must not
// name a directory. Only one input is held in memory at a time.
func (p *Packer) PackFile(outPath string, inputPaths []string) error {
	if fileExists(outPath) {
		return errors.Wrapf(ErrOutputExists, "%q", outPath)
	}

	for _, inputPath := range inputPaths {
		if _, _, err := rdir.Split83(inputPath); err != nil {
			return err
		}
	}

	b, err := p.newBuilder()
	if err != nil {
		return err
	}
	for _, inputPath := range inputPaths {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return errors.Wrapf(ErrInputOpenFailed, "%q: %v", inputPath, err)
		}
		if err := b.place(InputFile{Name: inputPath, Data: data}); err != nil {
			return err
		}
	}
	image, err := b.finish(outPath)
	if err != nil {
		return err
	}

	return writeNewFile(outPath, image)
}

func (b *builder) place(file InputFile) error {
	name, ext, err := rdir.Split83(file.Name)
	if err != nil {
		return err
	}
	if len(file.Data) == 0 {
		return errors.Wrapf(ErrEmptyInput, "%q", file.Name)
	}
	if len(b.fileArea)+len(file.Data) > b.romSize {
		return errors.Wrapf(ErrOutOfROMSpace, "%q does not fit", file.Name)
	}

	chunks := lo.Chunk(file.Data, rlayout.BlockSize)
	for i, chunk := range chunks {
		if i%rlayout.AllocationMapSize == 0 {
			if len(b.entries)+1 > rlayout.MaxDirEntries-1 {
				return errors.Wrapf(ErrOutOfDirectorySpace, "%q needs slot %d", file.Name, len(b.entries)+1)
			}
			b.entries = append(b.entries, rdir.Entry{
				Validity:      int(rlayout.EntryValid),
				FileName:      name,
				FileType:      ext,
				LogicalExtent: i / rlayout.AllocationMapSize,
				AllocationMap: make([]int, 0, rlayout.AllocationMapSize),
			})
		}
		entry := &b.entries[len(b.entries)-1]
		entry.AllocationMap = append(entry.AllocationMap, b.nextBlock)
		entry.RecordCount += rlayout.RecordsPerBlock
		b.fileArea = append(b.fileArea, chunk...)
		// the last chunk is padded with zeroes up to the block boundary
		b.fileArea = append(b.fileArea, make([]byte, rlayout.BlockSize-len(chunk))...)
		b.nextBlock++
	}

	b.logger.Debug(
		"placed file",
		"name", file.Name,
		"bytes", len(file.Data),
		"blocks", len(chunks),
		"extents", ds.NearestDivisibleByM(len(chunks), rlayout.AllocationMapSize)/rlayout.AllocationMapSize,
	)
	return nil
}

func (b *builder) finish(romName string) ([]byte, error) {
	dirEntries := rlayout.RoundUpDirEntries(len(b.entries))
	dirSize := dirEntries * rlayout.EntrySize
	if dirSize+len(b.fileArea) > b.romSize {
		return nil, errors.Wrapf(
			ErrOutOfROMSpace,
			"%d directory bytes and %d file bytes exceed %d",
			dirSize, len(b.fileArea), b.romSize,
		)
	}

	if len(romName) > MaxROMNameLength {
		romName = romName[:MaxROMNameLength]
	}
	header := rheader.Header{
		ID:         []byte{rlayout.Magic, b.config.Format},
		Capacity:   int(b.config.Capacity),
		Checksum:   len(b.fileArea) & 0xFFFF,
		SystemName: b.config.SystemName,
		ROMName:    romName,
		DirEntries: dirEntries,
		V:          "V",
		Version:    b.config.Version,
		Month:      b.config.Month,
		Day:        b.config.Day,
		Year:       b.config.Year,
	}
	directory, err := rheader.Encode(header)
	if err != nil {
		return nil, errors.Wrap(err, "Packer error encoding header")
	}
	for _, entry := range b.entries {
		entryBytes, err := rdir.EncodeEntry(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "Packer error encoding %s extent %d", entry.FullName(), entry.LogicalExtent)
		}
		directory = append(directory, entryBytes...)
	}
	for len(directory) < dirSize {
		directory = append(directory, rdir.InvalidEntry()...)
	}

	image := ds.Repeat(b.romSize, rlayout.Erased)
	copy(image, directory)
	copy(image[dirSize:], b.fileArea)

	b.logger.Debug(
		"built image",
		"dir_entries", dirEntries,
		"blocks", b.nextBlock-1,
		"file_area", len(b.fileArea),
	)

	if b.config.Capacity == rlayout.Capacity256KBit {
		image = rlayout.SwapHalves(image)
	}
	return image, nil
}
