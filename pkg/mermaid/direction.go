package mermaid

import (
	"strings"

	"github.com/matzehuels/cargograph/pkg/errors"
)

// Direction is a Mermaid flowchart orientation.
type Direction string

// Supported directions.
const (
	TopDown   Direction = "TD"
	TopBottom Direction = "TB"
	LeftRight Direction = "LR"
	RightLeft Direction = "RL"
	BottomTop Direction = "BT"
)

// DefaultDirection is used when none is configured.
const DefaultDirection = TopDown

// Directions lists the supported directions in display order.
var Directions = []Direction{TopDown, TopBottom, LeftRight, RightLeft, BottomTop}

// ParseDirection validates s as a direction. Matching is case-sensitive, as
// in Mermaid itself.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if string(d) == s {
			return d, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidDirection,
		"invalid direction %q (available: %s)", s, strings.Join(DirectionNames(), ", "))
}

// DirectionNames returns the direction keywords as strings.
func DirectionNames() []string {
	names := make([]string, len(Directions))
	for i, d := range Directions {
		names[i] = string(d)
	}
	return names
}
