package domain

import (
	"encoding/json"
	"maps"
)

// SnapshotInput is everything a Snapshot is assembled from.
type SnapshotInput struct {
	MediaType        string
	Orientation      Orientation
	IsCalculated     bool
	MobileBreakpoint string
	Comparison       Comparison
}

// Snapshot is the read-only view of the responsive state handed to consumers.
// A new Snapshot is only created when one of its values changes, so consumers
// may compare pointers to skip work.
type Snapshot struct {
	in SnapshotInput
}

// NewSnapshot creates a snapshot from its input.
func NewSnapshot(in SnapshotInput) *Snapshot {
	return &Snapshot{in: in}
}

// MediaType returns the active breakpoint name.
func (s *Snapshot) MediaType() string { return s.in.MediaType }

// Orientation returns the viewport orientation.
func (s *Snapshot) Orientation() Orientation { return s.in.Orientation }

// IsCalculated reports whether the active breakpoint comes from a real measurement.
func (s *Snapshot) IsCalculated() bool { return s.in.IsCalculated }

// MobileBreakpoint returns the configured mobile cutoff.
func (s *Snapshot) MobileBreakpoint() string { return s.in.MobileBreakpoint }

// Is reports whether name is the active breakpoint.
func (s *Snapshot) Is(name string) bool { return s.in.Comparison.Is[name] }

// GreaterThan reports whether the active breakpoint is strictly above name.
func (s *Snapshot) GreaterThan(name string) bool { return s.in.Comparison.GreaterThan[name] }

// LessThan reports whether the active breakpoint is strictly below name.
func (s *Snapshot) LessThan(name string) bool { return s.in.Comparison.LessThan[name] }

// IsMobile reports whether the active breakpoint is below the mobile cutoff.
func (s *Snapshot) IsMobile() bool { return s.LessThan(s.in.MobileBreakpoint) }

// Comparison returns a copy of the comparison maps.
func (s *Snapshot) Comparison() Comparison {
	return Comparison{
		Is:          maps.Clone(s.in.Comparison.Is),
		GreaterThan: maps.Clone(s.in.Comparison.GreaterThan),
		LessThan:    maps.Clone(s.in.Comparison.LessThan),
	}
}

// Matches reports whether the snapshot was assembled from an equal input.
func (s *Snapshot) Matches(in SnapshotInput) bool {
	return s.in.MediaType == in.MediaType &&
		s.in.Orientation == in.Orientation &&
		s.in.IsCalculated == in.IsCalculated &&
		s.in.MobileBreakpoint == in.MobileBreakpoint &&
		s.in.Comparison.Equal(in.Comparison)
}

type snapshotJSON struct {
	MediaType        string          `json:"mediaType"`
	Orientation      Orientation     `json:"orientation"`
	IsCalculated     bool            `json:"isCalculated"`
	MobileBreakpoint string          `json:"mobileBreakpoint"`
	Is               map[string]bool `json:"is"`
	GreaterThan      map[string]bool `json:"greaterThan"`
	LessThan         map[string]bool `json:"lessThan"`
}

// MarshalJSON implements json.Marshaler.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(snapshotJSON{
		MediaType:        s.in.MediaType,
		Orientation:      s.in.Orientation,
		IsCalculated:     s.in.IsCalculated,
		MobileBreakpoint: s.in.MobileBreakpoint,
		Is:               s.in.Comparison.Is,
		GreaterThan:      s.in.Comparison.GreaterThan,
		LessThan:         s.in.Comparison.LessThan,
	})
}
