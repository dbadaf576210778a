package layer

import (
	"errors"
	"fmt"
)

// Grid dimensions for the 4x4 pad.
const (
	GridWidth  = 4
	GridHeight = 4
	NumKeys    = GridWidth * GridHeight
)

// ErrIndexOutOfRange indicates a key index or grid position outside the
// 4x4 pad.
var ErrIndexOutOfRange = errors.New("key index out of range")

// IndexToGrid maps a physical key index to its (row, column) position.
// The mapping is a bijection with GridToIndex.
func IndexToGrid(index int) (row, col int, err error) {
	if index < 0 || index >= NumKeys {
		return 0, 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return index / GridWidth, index % GridWidth, nil
}

// GridToIndex maps a (row, column) position to its physical key index.
func GridToIndex(row, col int) (int, error) {
	if row < 0 || row >= GridHeight || col < 0 || col >= GridWidth {
		return 0, fmt.Errorf("%w: row %d col %d", ErrIndexOutOfRange, row, col)
	}
	return row*GridWidth + col, nil
}
