package domain

import (
	"iter"
	"slices"
)

// Descriptor describes one breakpoint of a configuration: its range query and
// its position relative to every other breakpoint.
type Descriptor struct {
	Name  string
	Query string

	greaterThan map[string]struct{}
	lessThan    map[string]struct{}
}

// IsGreaterThan reports whether name sorts strictly before this breakpoint.
func (d Descriptor) IsGreaterThan(name string) bool {
	_, ok := d.greaterThan[name]
	return ok
}

// IsLessThan reports whether name sorts strictly after this breakpoint.
func (d Descriptor) IsLessThan(name string) bool {
	_, ok := d.lessThan[name]
	return ok
}

// Descriptors is the immutable, ordered descriptor list of a configuration.
// Its pointer identity stands for the configuration it was built from.
type Descriptors struct {
	items []Descriptor
	index map[string]int
}

// Len returns the number of descriptors.
func (ds *Descriptors) Len() int {
	if ds == nil {
		return 0
	}
	return len(ds.items)
}

// At returns the descriptor at position i.
func (ds *Descriptors) At(i int) Descriptor {
	return ds.items[i]
}

// Lookup returns the descriptor with the given name.
func (ds *Descriptors) Lookup(name string) (Descriptor, bool) {
	if ds == nil {
		return Descriptor{}, false
	}
	i, ok := ds.index[name]
	if !ok {
		return Descriptor{}, false
	}
	return ds.items[i], true
}

// Names returns the breakpoint names in order.
func (ds *Descriptors) Names() []string {
	names := make([]string, 0, ds.Len())
	for d := range ds.All() {
		names = append(names, d.Name)
	}
	return names
}

// All iterates the descriptors in ascending order.
func (ds *Descriptors) All() iter.Seq[Descriptor] {
	return func(yield func(Descriptor) bool) {
		if ds == nil {
			return
		}
		for _, d := range ds.items {
			if !yield(d) {
				return
			}
		}
	}
}

// GreaterThan returns the names this breakpoint is greater than, in order.
func (ds *Descriptors) GreaterThan(name string) []string {
	return ds.related(name, Descriptor.IsGreaterThan)
}

// LessThan returns the names this breakpoint is less than, in order.
func (ds *Descriptors) LessThan(name string) []string {
	return ds.related(name, Descriptor.IsLessThan)
}

func (ds *Descriptors) related(name string, rel func(Descriptor, string) bool) []string {
	d, ok := ds.Lookup(name)
	if !ok {
		return nil
	}
	return slices.DeleteFunc(ds.Names(), func(other string) bool {
		return !rel(d, other)
	})
}
