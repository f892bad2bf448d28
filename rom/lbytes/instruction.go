package lbytes

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ExecuteInstructions create the final value t with type T by
//
//   - Reading the instruction into a map, then
//   - Create JSON bytes from the map, and finally
//   - Read the JSON bytes into t
//
// In order to lessen the burden of manual mapping.
func ExecuteInstructions[T any](instructions []Instruction) (*T, error) {
	tMap := map[string]any{}
	for _, instruction := range instructions {
		value, err := instruction.ReadFunction()
		if err != nil {
			err := errors.Wrapf(err, `ExecuteInstructions error reading key "%v"`, instruction.Key)
			return nil, err
		}
		tMap[instruction.Key] = value
	}
	tBytes, err := json.Marshal(tMap)
	if err != nil {
		err := errors.Wrapf(err, `ExecuteInstructions error marshalling map "%v" to JSON`, tMap)
		return nil, err
	}

	var t T
	if err := json.Unmarshal(tBytes, &t); err != nil {
		err := errors.Wrapf(
			err, `ExecuteInstructions error unmarshalling bytes "%s" to type "%T"`,
			string(tBytes), t,
		)
		return nil, err
	}

	return &t, nil
}

func CreateUint8ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadUint8()
	}
}

func CreateUint16ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadUint16()
	}
}

// CreateFixedStringReadFunction reads an n-byte space-padded field.
func CreateFixedStringReadFunction(reader *Reader, n int) ReadFunction {
	return func() (any, error) {
		bs, err := reader.ReadBytes(n)
		if err != nil {
			return "", err
		}
		return DecodeFixed(bs), nil
	}
}

// CreateUint8SliceReadFunction reads n single-byte values. The values are
// handed out as ints so that JSON keeps them as numbers instead of base64.
func CreateUint8SliceReadFunction(reader *Reader, n int) ReadFunction {
	return func() (any, error) {
		bs, err := reader.ReadBytes(n)
		if err != nil {
			return nil, err
		}
		values := make([]int, 0, n)
		for _, b := range bs {
			values = append(values, int(b))
		}
		return values, nil
	}
}
