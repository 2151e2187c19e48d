package viewport

import (
	"strconv"
	"strings"

	"go.trai.ch/responsive/internal/core/domain"
	"go.trai.ch/zerr"
)

type feature uint8

const (
	minWidth feature = iota
	maxWidth
	minHeight
	maxHeight
	orientation
)

var features = map[string]feature{
	"min-width":   minWidth,
	"max-width":   maxWidth,
	"min-height":  minHeight,
	"max-height":  maxHeight,
	"orientation": orientation,
}

type condition struct {
	feature   feature
	px        int
	landscape bool
}

func (c condition) eval(width, height int) bool {
	switch c.feature {
	case minWidth:
		return width >= c.px
	case maxWidth:
		return width <= c.px
	case minHeight:
		return height >= c.px
	case maxHeight:
		return height <= c.px
	case orientation:
		return (width >= height) == c.landscape
	}
	return false
}

// Query is a parsed media query: a comma separated list of alternatives, each
// of which is a conjunction of conditions.
type Query struct {
	media string
	anyOf [][]condition
}

// ParseQuery parses the supported media query subset: width and height bounds
// in px, orientation, "and" conjunctions and comma separated alternatives.
func ParseQuery(media string) (*Query, error) {
	if strings.TrimSpace(media) == "" {
		return nil, zerr.With(domain.ErrInvalidMediaQuery, "media", media)
	}

	q := &Query{media: media}
	for _, alt := range strings.Split(media, ",") {
		conds, err := parseConjunction(alt)
		if err != nil {
			return nil, zerr.With(err, "media", media)
		}
		q.anyOf = append(q.anyOf, conds)
	}
	return q, nil
}

// Media returns the query text.
func (q *Query) Media() string { return q.media }

// Eval reports whether a viewport of the given size satisfies the query.
func (q *Query) Eval(width, height int) bool {
	for _, conds := range q.anyOf {
		ok := true
		for _, c := range conds {
			if !c.eval(width, height) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func parseConjunction(s string) ([]condition, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return nil, domain.ErrInvalidMediaQuery
	}

	// Rejoin so that "( min-width : 10px )" and "(min-width:10px)" tokenize alike.
	var parts []string
	for _, term := range strings.Split(strings.Join(fields, " "), " and ") {
		parts = append(parts, strings.TrimSpace(term))
	}

	conds := make([]condition, 0, len(parts))
	for _, part := range parts {
		c, err := parseCondition(part)
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}
	return conds, nil
}

func parseCondition(s string) (condition, error) {
	inner, ok := strings.CutPrefix(s, "(")
	if !ok {
		return condition{}, zerr.With(domain.ErrInvalidMediaQuery, "condition", s)
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return condition{}, zerr.With(domain.ErrInvalidMediaQuery, "condition", s)
	}

	name, value, ok := strings.Cut(inner, ":")
	if !ok {
		return condition{}, zerr.With(domain.ErrInvalidMediaQuery, "condition", s)
	}
	name, value = strings.TrimSpace(name), strings.TrimSpace(value)

	f, ok := features[name]
	if !ok {
		return condition{}, zerr.With(domain.ErrInvalidMediaQuery, "feature", name)
	}

	if f == orientation {
		o, err := domain.ParseOrientation(value)
		if err != nil || o == domain.OrientationUnset {
			return condition{}, zerr.With(domain.ErrInvalidMediaQuery, "orientation", value)
		}
		return condition{feature: f, landscape: o == domain.OrientationLandscape}, nil
	}

	px, err := parsePixels(value)
	// A negative upper bound is an empty range: the range built for a
	// breakpoint sharing its width with the next one.
	if err == nil && px < 0 && f != maxWidth && f != maxHeight {
		err = domain.ErrInvalidMediaQuery
	}
	if err != nil {
		return condition{}, zerr.With(zerr.With(err, "feature", name), "value", value)
	}
	return condition{feature: f, px: px}, nil
}

func parsePixels(s string) (int, error) {
	digits, ok := strings.CutSuffix(s, "px")
	if !ok && s != "0" {
		return 0, domain.ErrInvalidMediaQuery
	}
	n, err := strconv.Atoi(strings.TrimSpace(digits))
	if err != nil {
		return 0, domain.ErrInvalidMediaQuery
	}
	return n, nil
}
