package components

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CoordinateSet is an unordered set of squares. Move queries return sets, so
// callers compare them with Equal rather than by sequence.
type CoordinateSet map[Coordinates]struct{}

func NewCoordinateSet(coords ...Coordinates) CoordinateSet {
	set := make(CoordinateSet, len(coords))
	for _, c := range coords {
		set.Add(c)
	}
	return set
}

func (s CoordinateSet) Add(c Coordinates) {
	s[c] = struct{}{}
}

func (s CoordinateSet) Contains(c Coordinates) bool {
	_, ok := s[c]
	return ok
}

func (s CoordinateSet) Len() int {
	return len(s)
}

// Union adds every member of other to s and returns s.
func (s CoordinateSet) Union(other CoordinateSet) CoordinateSet {
	maps.Copy(s, other)
	return s
}

func (s CoordinateSet) Equal(other CoordinateSet) bool {
	return maps.Equal(s, other)
}

// Sorted returns the members ordered by y, then x.
func (s CoordinateSet) Sorted() []Coordinates {
	coords := maps.Keys(s)
	slices.SortFunc(coords, func(a, b Coordinates) bool {
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return coords
}

func (s CoordinateSet) String() string {
	parts := make([]string, 0, len(s))
	for _, c := range s.Sorted() {
		parts = append(parts, c.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
