package domain

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Breakpoint is a named minimum viewport width.
type Breakpoint struct {
	Name     string
	MinWidth int
}

// NamedQuery pairs a breakpoint name with the range query selecting its span.
type NamedQuery struct {
	Name  string
	Query string
}

// BreakpointSet is the validated source of a breakpoint configuration.
// It is either a WidthSet or a QuerySet; the choice is made once at
// construction and both variants answer the same questions afterwards.
type BreakpointSet interface {
	// Names returns the breakpoint names in ascending order.
	Names() []string
	// Queries returns the range query of every breakpoint in ascending order.
	Queries() []NamedQuery
	// Fingerprint returns a content hash suitable as a memoization key.
	Fingerprint() uint64

	sealed()
}

// WidthSet is a breakpoint set defined by minimum widths.
type WidthSet struct {
	entries []Breakpoint
}

// NewWidthSet validates the given breakpoints and orders them by ascending
// width. Breakpoints sharing a width keep their original relative order.
func NewWidthSet(breakpoints ...Breakpoint) (WidthSet, error) {
	seen := make(map[string]struct{}, len(breakpoints))
	for _, bp := range breakpoints {
		if err := validateName(bp.Name, seen); err != nil {
			return WidthSet{}, err
		}
		if bp.MinWidth < 0 {
			return WidthSet{}, zerr.With(zerr.With(ErrNegativeWidth, "breakpoint", bp.Name), "width", bp.MinWidth)
		}
	}
	return WidthSet{entries: SortByWidth(breakpoints)}, nil
}

// Breakpoints returns a copy of the ordered breakpoints.
func (s WidthSet) Breakpoints() []Breakpoint {
	return slices.Clone(s.entries)
}

// Names returns the breakpoint names in ascending width order.
func (s WidthSet) Names() []string {
	names := make([]string, len(s.entries))
	for i, bp := range s.entries {
		names[i] = bp.Name
	}
	return names
}

// Queries builds the range query of every breakpoint.
func (s WidthSet) Queries() []NamedQuery {
	return BuildMediaQueries(s.entries)
}

// Fingerprint hashes the ordered name/width pairs.
func (s WidthSet) Fingerprint() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString("widths\x00")
	for _, bp := range s.entries {
		_, _ = d.WriteString(bp.Name)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(strconv.Itoa(bp.MinWidth))
		_, _ = d.WriteString("\x00")
	}
	return d.Sum64()
}

func (WidthSet) sealed() {}

// QuerySet is a breakpoint set defined by precomputed range queries.
// The order of the entries is the breakpoint order; widths are unknown.
type QuerySet struct {
	entries []NamedQuery
}

// NewQuerySet validates the given queries, keeping their order.
func NewQuerySet(queries ...NamedQuery) (QuerySet, error) {
	seen := make(map[string]struct{}, len(queries))
	for _, q := range queries {
		if err := validateName(q.Name, seen); err != nil {
			return QuerySet{}, err
		}
		if strings.TrimSpace(q.Query) == "" {
			return QuerySet{}, zerr.With(ErrEmptyMediaQuery, "breakpoint", q.Name)
		}
	}
	return QuerySet{entries: slices.Clone(queries)}, nil
}

// Names returns the breakpoint names in configured order.
func (s QuerySet) Names() []string {
	names := make([]string, len(s.entries))
	for i, q := range s.entries {
		names[i] = q.Name
	}
	return names
}

// Queries returns a copy of the configured queries.
func (s QuerySet) Queries() []NamedQuery {
	return slices.Clone(s.entries)
}

// Fingerprint hashes the ordered name/query pairs.
func (s QuerySet) Fingerprint() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString("queries\x00")
	for _, q := range s.entries {
		_, _ = d.WriteString(q.Name)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(q.Query)
		_, _ = d.WriteString("\x00")
	}
	return d.Sum64()
}

func (QuerySet) sealed() {}

// DefaultBreakpoints returns the six-tier default set
// (xs=0, sm=576, md=768, lg=992, xl=1200, xxl=1400).
func DefaultBreakpoints() WidthSet {
	return WidthSet{entries: []Breakpoint{
		{Name: "xs", MinWidth: 0},
		{Name: "sm", MinWidth: 576},
		{Name: "md", MinWidth: 768},
		{Name: "lg", MinWidth: 992},
		{Name: "xl", MinWidth: 1200},
		{Name: "xxl", MinWidth: 1400},
	}}
}

func validateName(name string, seen map[string]struct{}) error {
	if strings.TrimSpace(name) == "" {
		return zerr.With(ErrInvalidBreakpointName, "breakpoint", name)
	}
	if _, ok := seen[name]; ok {
		return zerr.With(ErrDuplicateBreakpoint, "breakpoint", name)
	}
	seen[name] = struct{}{}
	return nil
}
