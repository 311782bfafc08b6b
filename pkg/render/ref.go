package render

import (
	"strconv"
	"strings"

	"github.com/matzehuels/chartkit/pkg/chart/interact"
	errs "github.com/matzehuels/chartkit/pkg/errors"
)

// ParseRef parses "series:point" or a bare "point" (series 0).
func ParseRef(s string) (interact.Ref, error) {
	s = strings.TrimSpace(s)
	series, point, found := strings.Cut(s, ":")
	if !found {
		series, point = "0", s
	}
	si, err1 := strconv.Atoi(series)
	pi, err2 := strconv.Atoi(point)
	if err1 != nil || err2 != nil || si < 0 || pi < 0 {
		return interact.Ref{}, errs.New(errs.ErrCodeInvalidRef, "invalid ref %q (want \"point\" or \"series:point\")", s)
	}
	return interact.Ref{Series: si, Point: pi}, nil
}

// ParseProp parses a query or flag value into a prop. An empty string is
// uncontrolled, "none" is controlled with nothing hovered or selected, and
// anything else must be a ref.
func ParseProp(s string) (interact.Prop[interact.Ref], error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return interact.Uncontrolled[interact.Ref](), nil
	case "none":
		return interact.Controlled(interact.None[interact.Ref]()), nil
	}
	ref, err := ParseRef(s)
	if err != nil {
		return interact.Prop[interact.Ref]{}, err
	}
	return interact.Controlled(interact.Some(ref)), nil
}

// formatRef returns the ref string, or "" when o is None.
func formatRef(o interact.Optional[interact.Ref]) string {
	if r, ok := o.Get(); ok {
		return r.String()
	}
	return ""
}
