package lbytes

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesReader_ReadUint16(t *testing.T) {
	reader := Reader{
		Reader: *bytes.NewReader(
			[]byte{
				0x00, 0x04,
				0x34, 0x12,
			},
		),
	}

	result1, err := reader.ReadUint16()
	assert.NoError(t, err)
	assert.Equal(t, 1024, result1)

	result2, err := reader.ReadUint16()
	assert.NoError(t, err)
	assert.Equal(t, 0x1234, result2)

	_, err = reader.ReadUint16()
	assert.Error(t, err)
}

func TestBytesReader_ReadBytes_Short(t *testing.T) {
	reader := NewBytesReader([]byte{1, 2, 3})

	_, err := reader.ReadBytes(4)
	assert.Error(t, err)
}

func TestBytesReader_ReadBytes_Zero(t *testing.T) {
	reader := NewBytesReader([]byte{})

	bs, err := reader.ReadBytes(0)
	assert.NoError(t, err)
	assert.Empty(t, bs)
}

func TestEncodeFixed(t *testing.T) {
	bs, err := EncodeFixed("HELLO", 8)
	require.NoError(t, err)
	assert.Equal(t, []byte("HELLO   "), bs)

	bs, err = EncodeFixed("TXT", 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("TXT"), bs)

	_, err = EncodeFixed("TOOLONGNAME", 8)
	assert.Error(t, err)
}

func TestDecodeFixed(t *testing.T) {
	tests := map[string]struct {
		in  []byte
		out string
	}{
		"padded":        {[]byte("HELLO   "), "HELLO"},
		"full":          {[]byte("ABCDEFGH"), "ABCDEFGH"},
		"empty":         {[]byte("   "), ""},
		"attribute":     {[]byte{'C', 'O' | 0x80, 'M'}, "COM"},
		"flagged space": {[]byte{'A', 'B', ' ' | 0x80, ' ' | 0x80}, "AB"},
	}
	for name, test := range tests {
		assert.Equal(t, test.out, DecodeFixed(test.in), name)
	}
}

func TestExecuteInstructions(t *testing.T) {
	type Record struct {
		Size  int    `json:"size"`
		Name  string `json:"name"`
		Slots []int  `json:"slots"`
	}
	reader := NewBytesReader([]byte{0x00, 0x04, 'A', 'B', ' ', 1, 2})
	instructions := []Instruction{
		{"size", CreateUint16ReadFunction(reader)},
		{"name", CreateFixedStringReadFunction(reader, 3)},
		{"slots", CreateUint8SliceReadFunction(reader, 2)},
	}

	record, err := ExecuteInstructions[Record](instructions)
	require.NoError(t, err)
	assert.Equal(t, Record{Size: 1024, Name: "AB", Slots: []int{1, 2}}, *record)

	_, err = ExecuteInstructions[Record](instructions)
	assert.Error(t, err)
}
