package domain

import "go.trai.ch/zerr"

// Orientation classifies the viewport aspect.
type Orientation uint8

const (
	// OrientationUnset means no orientation is known yet.
	OrientationUnset Orientation = iota
	// OrientationLandscape means the viewport is at least as wide as it is tall.
	OrientationLandscape
	// OrientationPortrait means the viewport is taller than it is wide.
	OrientationPortrait
)

// OrientationOf classifies a viewport size.
func OrientationOf(width, height int) Orientation {
	if width >= height {
		return OrientationLandscape
	}
	return OrientationPortrait
}

// ParseOrientation parses "landscape", "portrait" or the empty string.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "":
		return OrientationUnset, nil
	case "landscape":
		return OrientationLandscape, nil
	case "portrait":
		return OrientationPortrait, nil
	default:
		return OrientationUnset, zerr.With(ErrInvalidOrientation, "orientation", s)
	}
}

// String returns the orientation name, or an empty string when unset.
func (o Orientation) String() string {
	switch o {
	case OrientationLandscape:
		return "landscape"
	case OrientationPortrait:
		return "portrait"
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
