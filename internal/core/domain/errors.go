package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidBreakpointName is returned when a breakpoint has an empty or blank name.
	ErrInvalidBreakpointName = zerr.New("invalid breakpoint name")

	// ErrDuplicateBreakpoint is returned when two breakpoints share the same name.
	ErrDuplicateBreakpoint = zerr.New("duplicate breakpoint")

	// ErrNegativeWidth is returned when a breakpoint has a negative minimum width.
	ErrNegativeWidth = zerr.New("breakpoint width must not be negative")

	// ErrEmptyMediaQuery is returned when a precomputed media query is empty.
	ErrEmptyMediaQuery = zerr.New("media query must not be empty")

	// ErrConflictingBreakpointSources is returned when both breakpoint widths and
	// media queries are configured.
	ErrConflictingBreakpointSources = zerr.New("breakpoints and mediaQueries are mutually exclusive")

	// ErrInvalidOrientation is returned when an orientation value is neither landscape nor portrait.
	ErrInvalidOrientation = zerr.New("invalid orientation")

	// ErrInvalidMediaQuery is returned when a media query string cannot be parsed.
	ErrInvalidMediaQuery = zerr.New("invalid media query")

	// ErrViewportUnavailable is returned when no viewport measurement facility is present.
	ErrViewportUnavailable = zerr.New("viewport query facility unavailable")

	// ErrSubscriptionUnavailable is returned when a media query list offers no way to
	// register change listeners.
	ErrSubscriptionUnavailable = zerr.New("media query subscription unavailable")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = zerr.New("configuration file not found")
)
