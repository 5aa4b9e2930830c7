package nav

import (
	"errors"
	"fmt"

	"github.com/tinytelemetry/wonders/internal/catalog"
)

// ErrNotShowingItem is returned by Next and Previous outside an item screen.
var ErrNotShowingItem = errors.New("nav: not showing an item")

// ContractError reports a transition the view layer should never have
// requested. The state is left unchanged.
type ContractError struct {
	Op    string // transition name, e.g. "open_item"
	State State  // state at the time of the call
	Err   error
}

func (e *ContractError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("nav: %s from %s: %v", e.Op, e.State, e.Err)
	}
	return fmt.Sprintf("nav: %s from %s", e.Op, e.State)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// IsContractError reports whether err is a contract violation.
func IsContractError(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}

// IsLookupMiss reports whether err comes from an unknown key or collection.
func IsLookupMiss(err error) bool {
	return errors.Is(err, catalog.ErrLookupMiss)
}
