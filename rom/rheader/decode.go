package rheader

import (
	"fmt"

	"github.com/pkg/errors"
	"pxrom/rom/lbytes"
	"pxrom/rom/rlayout"
)

func IsValidMagicNumber(bs []byte) bool {
	return len(bs) >= idSize && rlayout.IsValidMagicNumber(bs[:idSize])
}

func createMagicNumberReadFunction(reader *lbytes.Reader) lbytes.ReadFunction {
	return func() (any, error) {
		id, err := reader.ReadBytes(idSize)
		if err != nil {
			return nil, err
		}
		if !rlayout.IsValidMagicNumber(id) {
			msg := fmt.Sprintf(
				`invalid magic number: expected "% X", got "% X"`,
				[]byte{rlayout.Magic, rlayout.FormatM}, id,
			)
			return nil, errors.New(msg)
		}
		return id, nil
	}
}

// Decode reads the 32-byte header and checks the magic number. The
// remaining fields are taken as found; dir_entries is validated by the
// caller, who knows how large the image is.
func Decode(reader *lbytes.Reader) (*Header, error) {
	readMagicNumber := createMagicNumberReadFunction(reader)
	readUint8 := lbytes.CreateUint8ReadFunction(reader)
	readUint16 := lbytes.CreateUint16ReadFunction(reader)
	readFixed := func(n int) lbytes.ReadFunction {
		return lbytes.CreateFixedStringReadFunction(reader, n)
	}

	headerInstructions := []lbytes.Instruction{
		{Key: "id", ReadFunction: readMagicNumber},
		{Key: "capacity", ReadFunction: readUint8},
		{Key: "checksum", ReadFunction: readUint16},
		{Key: "system_name", ReadFunction: readFixed(systemNameSize)},
		{Key: "rom_name", ReadFunction: readFixed(romNameSize)},
		{Key: "dir_entries", ReadFunction: readUint8},
		{Key: "v", ReadFunction: readFixed(vSize)},
		{Key: "version", ReadFunction: readFixed(versionSize)},
		{Key: "month", ReadFunction: readFixed(dateFieldSize)},
		{Key: "day", ReadFunction: readFixed(dateFieldSize)},
		{Key: "year", ReadFunction: readFixed(dateFieldSize)},
	}

	header, err := lbytes.ExecuteInstructions[Header](headerInstructions)
	if err != nil {
		return nil, errors.Wrap(err, "rheader.Decode error")
	}

	return header, nil
}
