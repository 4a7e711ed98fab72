package db

import (
	"context"
	"errors"
)

// ErrSlotEmpty is returned by Slot.Read when nothing has been stored yet.
var ErrSlotEmpty = errors.New("storage slot is empty")

// Slot is a single named durable location holding one serialized document.
// Every write replaces the previous value entirely.
type Slot interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, payload []byte) error
}
