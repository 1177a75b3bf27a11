package models

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Quarter strings follow the fixed format "Q<1-4> <year>" and partition all
// data temporally. Every aggregate view filters by exactly one quarter.

var quarterRe = regexp.MustCompile(`^Q([1-4]) (\d{4})$`)

// ValidQuarter reports whether s is a well-formed quarter string.
func ValidQuarter(s string) bool {
	return quarterRe.MatchString(s)
}

// ParseQuarter splits a quarter string into its quarter number and year.
func ParseQuarter(s string) (q, year int, err error) {
	m := quarterRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, fmt.Errorf("invalid quarter %q (expected \"Q<1-4> <year>\")", s)
	}
	q, _ = strconv.Atoi(m[1])
	year, _ = strconv.Atoi(m[2])
	return q, year, nil
}

// QuarterLess orders two quarter strings chronologically. Malformed quarters
// sort before well-formed ones so they surface at the top of pickers.
func QuarterLess(a, b string) bool {
	qa, ya, errA := ParseQuarter(a)
	qb, yb, errB := ParseQuarter(b)
	if errA != nil || errB != nil {
		if (errA != nil) != (errB != nil) {
			return errA != nil
		}
		return a < b
	}
	if ya != yb {
		return ya < yb
	}
	return qa < qb
}

// SortQuarters sorts quarter strings chronologically in place.
func SortQuarters(quarters []string) {
	sort.Slice(quarters, func(i, j int) bool { return QuarterLess(quarters[i], quarters[j]) })
}

// RecentQuarters returns n consecutive quarters ending at the given quarter,
// oldest first. Used by seed generation and quarter pickers.
func RecentQuarters(last string, n int) ([]string, error) {
	q, year, err := ParseQuarter(last)
	if err != nil {
		return nil, err
	}
	out := make([]string, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = fmt.Sprintf("Q%d %d", q, year)
		q--
		if q == 0 {
			q = 4
			year--
		}
	}
	return out, nil
}
