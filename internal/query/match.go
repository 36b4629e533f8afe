package query

import (
	"math"
	"strconv"
	"strings"
)

// LikeEscape is the escape character used in every LIKE predicate.
const LikeEscape = "!"

// ContainsPattern turns a search term into a case-folded LIKE pattern that
// matches exactly the values Contains accepts. The caller compares it
// against LOWER(column) with ESCAPE '!'.
func ContainsPattern(term string) string {
	var b strings.Builder
	b.WriteByte('%')
	for _, r := range strings.ToLower(term) {
		switch r {
		case '%', '_', '!':
			b.WriteByte('!')
		}
		b.WriteRune(r)
	}
	b.WriteByte('%')
	return b.String()
}

// Contains is the in-memory counterpart of ContainsPattern: a
// case-insensitive substring test. Invalid (NULL) values never match, not
// even the empty term.
func Contains(value string, valid bool, term string) bool {
	if !valid {
		return false
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}

// YearText renders a release year the way the store casts it to text.
func YearText(year int64) string {
	return strconv.FormatInt(year, 10)
}

// ClampLimit bounds a validated, non-negative limit by max.
func ClampLimit(limit, max int) int {
	if limit > max {
		return max
	}
	return limit
}

// SalesSum accumulates num_sales with Neumaier compensation, as the store's
// SUM does, so the total rounds to the same hundredth.
type SalesSum struct {
	sum, c float64
}

// Add adds v to the sum.
func (s *SalesSum) Add(v float64) {
	t := s.sum + v
	if math.Abs(s.sum) >= math.Abs(v) {
		s.c += (s.sum - t) + v
	} else {
		s.c += (v - t) + s.sum
	}
	s.sum = t
}

// Total is the compensated sum rounded once to hundredths; it equals the
// store's ROUND(SUM(num_sales), 2) for the same rows.
func (s SalesSum) Total() float64 {
	return RoundSales(s.sum + s.c)
}

// RoundSales rounds a sales total to hundredths of a million units, the
// precision of num_sales.
func RoundSales(v float64) float64 {
	return math.Round(v*100) / 100
}
