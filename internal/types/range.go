package types

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrRangeNoNumber    = errors.New("range contains no number")
	ErrRangeNotPositive = errors.New("range lower bound must be at least 1")
	ErrRangeInverted    = errors.New("range upper bound is below lower bound")
)

var rangeNumber = regexp.MustCompile(`\d+`)

// Range is a parsed "7", "7-10", "9+" or "3 to 4" style value.
// Open ranges have no upper bound and Max equals Min.
type Range struct {
	Min  int
	Max  int
	Open bool
}

func (r Range) String() string {
	switch {
	case r.Open:
		return fmt.Sprintf("%d+", r.Min)
	case r.Min == r.Max:
		return strconv.Itoa(r.Min)
	default:
		return fmt.Sprintf("%d-%d", r.Min, r.Max)
	}
}

// ParseRange reads the first one or two integers of s. Words around the
// numbers are ignored, so "5 days" parses as 5.
func ParseRange(s string) (Range, error) {
	locs := rangeNumber.FindAllStringIndex(s, 2)
	if len(locs) == 0 {
		return Range{}, fmt.Errorf("%w: %q", ErrRangeNoNumber, s)
	}

	lo, err := strconv.Atoi(s[locs[0][0]:locs[0][1]])
	if err != nil {
		return Range{}, fmt.Errorf("parse %q: %w", s, err)
	}
	if lo < 1 {
		return Range{}, fmt.Errorf("%w: %q", ErrRangeNotPositive, s)
	}
	r := Range{Min: lo, Max: lo}

	if len(locs) == 2 {
		hi, err := strconv.Atoi(s[locs[1][0]:locs[1][1]])
		if err != nil {
			return Range{}, fmt.Errorf("parse %q: %w", s, err)
		}
		if hi < lo {
			return Range{}, fmt.Errorf("%w: %q", ErrRangeInverted, s)
		}
		r.Max = hi
		return r, nil
	}

	if strings.HasPrefix(strings.TrimSpace(s[locs[0][1]:]), "+") {
		r.Open = true
	}
	return r, nil
}

// LowerBound returns the range minimum, or def when s does not parse.
func LowerBound(s string, def int) int {
	r, err := ParseRange(s)
	if err != nil {
		return def
	}
	return r.Min
}
