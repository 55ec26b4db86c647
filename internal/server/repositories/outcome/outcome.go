// Package outcome models the result of a conditional write, which can
// succeed, find no row, or find a row at a different version.
package outcome

import (
	"fmt"

	"github.com/dmitrijs2005/fuelcost/internal/common"
)

type Kind int

const (
	OK Kind = iota
	NotFound
	Conflict
)

func (k Kind) String() string {
	switch k {
	case OK:
		return "ok"
	case NotFound:
		return "not found"
	case Conflict:
		return "conflict"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Result carries a value only when Kind is OK.
type Result[T any] struct {
	Kind  Kind
	Value T
}

func Ok[T any](v T) Result[T] {
	return Result[T]{Kind: OK, Value: v}
}

// Missed is the result of a conditional write that touched no row. Without
// an expected version the row is absent; with one, the outcome is always a
// conflict, whether or not the row still exists.
func Missed[T any](expected *int64) Result[T] {
	if expected == nil {
		return Result[T]{Kind: NotFound}
	}
	return Result[T]{Kind: Conflict}
}

// Unwrap returns the value, or the error matching Kind for resource.
func (r Result[T]) Unwrap(resource string) (T, error) {
	switch r.Kind {
	case OK:
		return r.Value, nil
	case NotFound:
		var zero T
		return zero, common.NotFound(resource)
	default:
		var zero T
		return zero, common.PreconditionFailed(resource)
	}
}
