// Package position turns grid coordinates into relative-position phrases.
package position

import (
	"fmt"

	"github.com/nbenliogludev/go-page-brief/internal/metadata"
)

const (
	Min = -2
	Max = 2
)

// RangeError reports a coordinate outside the 5x5 grid.
type RangeError struct {
	Horizontal int
	Vertical   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("grid position (%d,%d) out of range [%d..%d]", e.Horizontal, e.Vertical, Min, Max)
}

// phrases is indexed [horizontal+2][vertical+2].
var phrases = [5][5]string{
	// horizontal -2
	{"top left corner", "left edge and above center", "left edge and vertical center", "left edge and below center", "bottom left corner"},
	// horizontal -1
	{"top and left center", "above and to the left of center", "left of center", "below and to the left of center", "bottom and left center"},
	// horizontal 0
	{"top center", "above and center-left of center", "center", "below and center-left of center", "bottom center"},
	// horizontal 1
	{"top and right center", "above and to the right of center", "right of center", "below and to the right of center", "bottom and right center"},
	// horizontal 2
	{"top right corner", "right edge and above center", "right edge and vertical center", "right edge and below center", "bottom right corner"},
}

// Phrase returns the human-readable zone for pos.
func Phrase(pos metadata.GridPosition) (string, error) {
	if !InRange(pos) {
		return "", &RangeError{Horizontal: pos.Horizontal, Vertical: pos.Vertical}
	}
	return phrases[pos.Horizontal-Min][pos.Vertical-Min], nil
}

func InRange(pos metadata.GridPosition) bool {
	return pos.Horizontal >= Min && pos.Horizontal <= Max &&
		pos.Vertical >= Min && pos.Vertical <= Max
}
