package ds

import (
	"encoding/json"
	"fmt"
)

// DumpJSON is meant for log lines; a value that does not marshal is
// reported in place of its JSON.
func DumpJSON[T any](t T) string {
	tBytes, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("DumpJSON error %w", err).Error()
	}

	return string(tBytes)
}
