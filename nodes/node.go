// Package nodes provides node providers that coordinate through an external
// store, so that every generating process of a fleet stamps its time-based
// UUIDs with a node no other process uses.
//
// A leased id becomes a node with FromID. The providers satisfy
// guuid.NodeProvider and are installed with guuid.WithNodeProvider.
package nodes

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Lzww0608/guuid/v2/types"
	"github.com/Lzww0608/guuid/v2/uuiderr"
)

// MaxID is the largest id that fits the 40 low bits of a node.
const MaxID = 1<<40 - 1

var (
	// ErrIDOutOfRange indicates a leased id that does not fit in a node
	ErrIDOutOfRange = uuiderr.New(uuiderr.ErrInvalidArgument, "node id must be between 0 and 2^40-1")

	// ErrUnknownTag indicates an allocation tag with no row in the allocation table
	ErrUnknownTag = uuiderr.New(uuiderr.ErrUnsatisfiedDependency, "no node allocation row for tag")

	// ErrClockBackwards indicates a clock earlier than the last registration of this process
	ErrClockBackwards = uuiderr.New(uuiderr.ErrUnsatisfiedDependency, "clock moved backwards since the node was last registered")
)

// FromID maps a leased id to a node. The first octet is 0x01, which sets the
// multicast bit, so a leased node never equals a hardware address.
func FromID(id int64) (types.Hexadecimal, error) {
	if id < 0 || id > MaxID {
		return types.Hexadecimal{}, fmt.Errorf("%w: %d", ErrIDOutOfRange, id)
	}
	return types.MustHexadecimal(fmt.Sprintf("01%010x", id)), nil
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}
