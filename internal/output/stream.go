// Package output renders tree events as text.
package output

import (
	"github.com/temirov/trr/internal/types"
)

// TreeRenderer consumes tree events in pre-order.
type TreeRenderer interface {
	Handle(event types.TreeEvent) error
	Flush() error
}
