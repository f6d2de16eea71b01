package training

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultRepsMin = 8
	DefaultRepsMax = 12
	MinTargetSets  = 1
	MaxTargetSets  = 10
)

var (
	repsPattern = regexp.MustCompile(`^\d{1,3}(-\d{1,3})?$`)
	firstNumber = regexp.MustCompile(`\d{1,4}`)
)

// ValidReps reports whether s is a plain rep count ("10") or a range ("8-12").
func ValidReps(s string) bool {
	return repsPattern.MatchString(s)
}

func ValidSets(sets int) bool {
	return sets >= MinTargetSets && sets <= MaxTargetSets
}

// ParseRepRange parses "8-12" or "10"; anything else yields the 8-12 default.
func ParseRepRange(s string) (int, int) {
	s = strings.TrimSpace(s)
	if !ValidReps(s) {
		return DefaultRepsMin, DefaultRepsMax
	}
	lo, hi, found := strings.Cut(s, "-")
	minReps, err := strconv.Atoi(lo)
	if err != nil {
		return DefaultRepsMin, DefaultRepsMax
	}
	if !found {
		return minReps, minReps
	}
	maxReps, err := strconv.Atoi(hi)
	if err != nil {
		return DefaultRepsMin, DefaultRepsMax
	}
	if maxReps < minReps {
		minReps, maxReps = maxReps, minReps
	}
	return minReps, maxReps
}

// FirstRepNumber extracts the first number of a free-form target like "8-12" or "ca. 10".
func FirstRepNumber(s string) (int, bool) {
	m := firstNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}
