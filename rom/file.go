package rom

import (
	"os"

	"github.com/pkg/errors"
)

func fileExists(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// writeNewFile creates path exclusively and removes it again if anything
// goes wrong after it was created.
func writeNewFile(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, os.ErrExist) {
		return errors.Wrapf(ErrOutputExists, "%q", path)
	}
	if err != nil {
		return errors.Wrapf(ErrOutputWriteFailed, "%q: %v", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	n, err := f.Write(data)
	if err == nil && n != len(data) {
		err = errors.Errorf("short write of %d bytes out of %d", n, len(data))
	}
	if err != nil {
		_ = f.Close()
		return errors.Wrapf(ErrOutputWriteFailed, "%q: %v", path, err)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(ErrOutputWriteFailed, "%q: %v", path, err)
	}
	return nil
}
