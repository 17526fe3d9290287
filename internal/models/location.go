package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Location is a cell on the simulation grid. Locations are values and are
// never mutated after construction.
type Location struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewLocation(row, col int) Location {
	return Location{Row: row, Col: col}
}

// ParseLocation parses a location serialized as "row,col".
func ParseLocation(s string) (Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Location{}, fmt.Errorf("invalid location %q: expected \"row,col\"", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Location{}, fmt.Errorf("invalid location %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Location{}, fmt.Errorf("invalid location %q: %w", s, err)
	}
	return Location{Row: row, Col: col}, nil
}

func (l Location) String() string {
	return fmt.Sprintf("%d,%d", l.Row, l.Col)
}

// Distance returns the Manhattan distance between two locations.
func Distance(a, b Location) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
