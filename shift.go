package halfshift

import (
	"strconv"
	"strings"
)

// ParseShiftPair parses two base-10 integers, ignoring surrounding
// whitespace. A malformed value yields a *ShiftError wrapping ErrInvalidShift.
func ParseShiftPair(shift1, shift2 string) (ShiftPair, error) {
	s1, err := parseShift("shift1", shift1)
	if err != nil {
		return ShiftPair{}, err
	}

	s2, err := parseShift("shift2", shift2)
	if err != nil {
		return ShiftPair{}, err
	}

	return ShiftPair{Shift1: s1, Shift2: s2}, nil
}

func parseShift(name, input string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, newShiftError(name, input, err)
	}
	return v, nil
}
