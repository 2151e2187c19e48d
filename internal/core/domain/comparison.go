package domain

import "maps"

// Comparison holds, for every configured breakpoint, whether the active
// breakpoint is equal to, greater than or less than it.
type Comparison struct {
	Is          map[string]bool
	GreaterThan map[string]bool
	LessThan    map[string]bool
}

// Compare derives the comparison maps for the active breakpoint.
// An active name that matches no descriptor yields maps where every breakpoint
// is false.
func Compare(active string, ds *Descriptors) Comparison {
	c := Comparison{
		Is:          make(map[string]bool, ds.Len()),
		GreaterThan: make(map[string]bool, ds.Len()),
		LessThan:    make(map[string]bool, ds.Len()),
	}

	current, ok := ds.Lookup(active)
	for d := range ds.All() {
		if !ok {
			c.Is[d.Name] = false
			c.GreaterThan[d.Name] = false
			c.LessThan[d.Name] = false
			continue
		}
		c.Is[d.Name] = d.Name == current.Name
		c.GreaterThan[d.Name] = current.IsGreaterThan(d.Name)
		c.LessThan[d.Name] = current.IsLessThan(d.Name)
	}
	return c
}

// Equal reports whether both comparisons hold the same values.
func (c Comparison) Equal(other Comparison) bool {
	return maps.Equal(c.Is, other.Is) &&
		maps.Equal(c.GreaterThan, other.GreaterThan) &&
		maps.Equal(c.LessThan, other.LessThan)
}
