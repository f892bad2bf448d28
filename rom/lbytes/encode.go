package lbytes

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
)

func EncodeValueUint16(value int) []byte {
	bs := make([]byte, 2)
	binary.LittleEndian.PutUint16(bs, uint16(value))
	return bs
}

// EncodeFixed lays s out in a field of exactly width bytes, padded on the
// right with spaces. There is no terminator.
func EncodeFixed(s string, width int) ([]byte, error) {
	if len(s) > width {
		msg := fmt.Sprintf(`EncodeFixed error: "%s" is longer than %d bytes`, s, width)
		return nil, errors.New(msg)
	}
	bs := bytes.Repeat([]byte{PaddingByte}, width)
	copy(bs, s)
	return bs, nil
}

// DecodeFixed returns the field content up to the first space.
//
// The high bit of each character is dropped before looking for the space:
// CP/M keeps file attributes there, and they are not part of the name.
func DecodeFixed(bs []byte) string {
	result := make([]byte, len(bs))
	for i, b := range bs {
		result[i] = b & 0x7F
	}
	if end := bytes.IndexByte(result, PaddingByte); end >= 0 {
		result = result[:end]
	}
	return string(result)
}
