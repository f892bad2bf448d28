package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

func (b *Reader) ReadUint8() (int, error) {
	value, err := b.ReadByte()
	if err != nil {
		return 0, errors.Wrap(err, "ReadUint8 error")
	}
	return int(value), nil
}

func (b *Reader) ReadUint16() (int, error) {
	bs, err := b.ReadBytes(2)
	if err != nil {
		return 0, errors.Wrap(err, "ReadUint16 error")
	}
	return int(binary.LittleEndian.Uint16(bs)), nil
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// return early to avoid an EOF error when the reader sits
	// at the end of the buffer and nothing is asked for
	if n == 0 {
		return bs, nil
	}
	// fields are fixed width, so a partial read is as bad as no read
	_, err := io.ReadFull(b, bs)
	if err != nil {
		return nil, err
	}
	return bs, nil
}
