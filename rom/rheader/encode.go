package rheader

import (
	"github.com/pkg/errors"
	"pxrom/rom/lbytes"
)

func Encode(header Header) ([]byte, error) {
	bs := make([]byte, 0, DefaultHeaderSize)
	if len(header.ID) != idSize {
		return nil, errors.Errorf("rheader.Encode error: id must be %d bytes, got %d", idSize, len(header.ID))
	}
	bs = append(bs, header.ID...)
	bs = append(bs, byte(header.Capacity))
	bs = append(bs, lbytes.EncodeValueUint16(header.Checksum)...)

	fixedFields := []struct {
		key   string
		value string
		width int
	}{
		{"system_name", header.SystemName, systemNameSize},
		{"rom_name", header.ROMName, romNameSize},
	}
	for _, field := range fixedFields {
		fieldBytes, err := lbytes.EncodeFixed(field.value, field.width)
		if err != nil {
			return nil, errors.Wrapf(err, `rheader.Encode error on "%s"`, field.key)
		}
		bs = append(bs, fieldBytes...)
	}

	bs = append(bs, byte(header.DirEntries))

	fixedFields = []struct {
		key   string
		value string
		width int
	}{
		{"v", header.V, vSize},
		{"version", header.Version, versionSize},
		{"month", header.Month, dateFieldSize},
		{"day", header.Day, dateFieldSize},
		{"year", header.Year, dateFieldSize},
	}
	for _, field := range fixedFields {
		fieldBytes, err := lbytes.EncodeFixed(field.value, field.width)
		if err != nil {
			return nil, errors.Wrapf(err, `rheader.Encode error on "%s"`, field.key)
		}
		bs = append(bs, fieldBytes...)
	}

	return bs, nil
}
