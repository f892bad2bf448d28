package ds

import (
	"fmt"
)

type (
	// ErrUnreachableCode marks a branch that well-formed input cannot reach.
	ErrUnreachableCode struct {
		Caller string
	}
)

func (r ErrUnreachableCode) Error() string {
	return fmt.Sprintf("%s: unreachable code", r.Caller)
}
