package rdir

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var ErrBadFileName = errors.New("input files must be 8.3")

// Split83 splits NAME.EXT on the last dot. Both sides must be present and
// fit their fields, and the name must survive being stored in a
// space-padded field.
func Split83(full string) (name string, ext string, err error) {
	if strings.ContainsAny(full, `/\:`) {
		return "", "", errors.Wrapf(ErrBadFileName, "%q contains a directory", full)
	}
	pos := strings.LastIndexByte(full, '.')
	if pos < 0 {
		return "", "", errors.Wrapf(ErrBadFileName, "%q has no extension", full)
	}
	name = full[:pos]
	ext = full[pos+1:]
	if len(name) < 1 || len(name) > FileNameSize || len(ext) < 1 || len(ext) > FileTypeSize {
		return "", "", errors.Wrapf(ErrBadFileName, "%q", full)
	}
	for _, c := range []byte(full) {
		if c <= ' ' || c >= 0x7F {
			return "", "", errors.Wrapf(ErrBadFileName, "%q has a character that cannot be stored", full)
		}
	}
	return name, ext, nil
}

// FullName is the host file name for a directory entry.
func (e Entry) FullName() string {
	return fmt.Sprintf("%s.%s", e.FileName, e.FileType)
}

// SameFile reports whether two extents belong to the same logical file.
func (e Entry) SameFile(other Entry) bool {
	return e.FileName == other.FileName && e.FileType == other.FileType
}
