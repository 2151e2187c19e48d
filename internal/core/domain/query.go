package domain

import (
	"cmp"
	"fmt"
	"slices"
)

// SortByWidth returns the breakpoints ordered by ascending minimum width.
// The sort is stable, so breakpoints sharing a width keep their input order.
func SortByWidth(breakpoints []Breakpoint) []Breakpoint {
	sorted := slices.Clone(breakpoints)
	slices.SortStableFunc(sorted, func(a, b Breakpoint) int {
		return cmp.Compare(a.MinWidth, b.MinWidth)
	})
	return sorted
}

// BuildMediaQueries turns ascending breakpoints into range queries.
// Each range starts at the breakpoint's width and stops one pixel before the
// next breakpoint; the last range is open-ended. Consecutive ranges therefore
// never overlap and leave no gap between them.
func BuildMediaQueries(breakpoints []Breakpoint) []NamedQuery {
	queries := make([]NamedQuery, len(breakpoints))
	for i, bp := range breakpoints {
		query := fmt.Sprintf("(min-width: %dpx)", bp.MinWidth)
		if i+1 < len(breakpoints) {
			query += fmt.Sprintf(" and (max-width: %dpx)", breakpoints[i+1].MinWidth-1)
		}
		queries[i] = NamedQuery{Name: bp.Name, Query: query}
	}
	return queries
}

// BuildDescriptors computes the descriptor list for ordered queries.
// A descriptor is greater than every breakpoint before it and less than every
// breakpoint after it.
func BuildDescriptors(queries []NamedQuery) *Descriptors {
	names := make([]string, len(queries))
	for i, q := range queries {
		names[i] = q.Name
	}

	ds := &Descriptors{
		items: make([]Descriptor, len(queries)),
		index: make(map[string]int, len(queries)),
	}
	for i, q := range queries {
		ds.items[i] = Descriptor{
			Name:        q.Name,
			Query:       q.Query,
			greaterThan: toSet(names[:i]),
			lessThan:    toSet(names[i+1:]),
		}
		if _, dup := ds.index[q.Name]; !dup {
			ds.index[q.Name] = i
		}
	}
	return ds
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
