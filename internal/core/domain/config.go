package domain

import (
	"github.com/cespare/xxhash/v2"
)

const (
	// DefaultInitialMediaType is the breakpoint assumed before the first measurement.
	DefaultInitialMediaType = "xs"
	// DefaultMobileBreakpoint is the breakpoint echoed as the mobile cutoff.
	DefaultMobileBreakpoint = "md"
)

// Config is the validated configuration of a responsive provider.
type Config struct {
	// Breakpoints is either a WidthSet or a QuerySet.
	Breakpoints BreakpointSet
	// InitialMediaType is the best guess for the active breakpoint before any
	// measurement happened.
	InitialMediaType string
	// DefaultOrientation seeds the orientation before it is measured.
	DefaultOrientation Orientation
	// MobileBreakpoint is echoed to consumers so they can define a mobile cutoff.
	MobileBreakpoint string
}

// DefaultConfig returns the configuration used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Breakpoints:      DefaultBreakpoints(),
		InitialMediaType: DefaultInitialMediaType,
		MobileBreakpoint: DefaultMobileBreakpoint,
	}
}

// WithDefaults fills every empty field with its default value.
func (c Config) WithDefaults() Config {
	if c.Breakpoints == nil {
		c.Breakpoints = DefaultBreakpoints()
	}
	if c.InitialMediaType == "" {
		c.InitialMediaType = DefaultInitialMediaType
	}
	if c.MobileBreakpoint == "" {
		c.MobileBreakpoint = DefaultMobileBreakpoint
	}
	return c
}

// Fingerprint hashes the breakpoint set only. Two configurations with the same
// fingerprint produce identical descriptor lists.
func (c Config) Fingerprint() uint64 {
	if c.Breakpoints == nil {
		return xxhash.Sum64String("")
	}
	return c.Breakpoints.Fingerprint()
}
