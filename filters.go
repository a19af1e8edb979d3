package main

import (
	"strings"
)

// Predicate is a boolean filter criterion applied to one entity.
type Predicate[E any] func(E) bool

// MatchAll reports whether the entity passes every predicate (logical AND).
// An empty predicate list passes everything.
func MatchAll[E any](e E, preds ...Predicate[E]) bool {
	for _, p := range preds {
		if !p(e) {
			return false
		}
	}
	return true
}

// SearchMatch checks a free-text query against the given fields.
// An empty query always passes; otherwise the match is a case-insensitive
// substring test and at least one field must contain the query.
func SearchMatch(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// ChoiceMatch checks a closed-enumeration filter. The sentinel value
// ("all"/"All") deactivates the filter; anything else must equal the
// entity's attribute exactly.
func ChoiceMatch(selected, sentinel, value string) bool {
	return selected == sentinel || selected == value
}

// FlagMatch checks a boolean-only filter: with the flag off everything
// passes, with it on the entity must satisfy the condition.
func FlagMatch(flag, cond bool) bool {
	return !flag || cond
}
