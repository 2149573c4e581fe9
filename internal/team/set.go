package team

import "sort"

// Set is an immutable collection of recognized team names.
// The zero value is an empty set that contains nothing.
type Set struct {
	names map[string]struct{}
}

// NewSet builds a set from the given names. Duplicates collapse silently;
// use Validate on a roster when duplicates should be rejected instead.
func NewSet(names ...string) Set {
	s := Set{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		s.names[n] = struct{}{}
	}
	return s
}

// Contains reports whether name is a recognized team.
func (s Set) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of recognized teams.
func (s Set) Len() int {
	return len(s.names)
}

// Names returns the recognized team names in sorted order.
// The returned slice is a copy; mutating it does not affect the set.
func (s Set) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Default returns the built-in international roster.
func Default() Set {
	return NewSet(
		"Argentina",
		"Australia",
		"Belgium",
		"Brazil",
		"Cameroon",
		"Canada",
		"Costa Rica",
		"Croatia",
		"Denmark",
		"Ecuador",
		"England",
		"France",
		"Germany",
		"Ghana",
		"Iran",
		"Italy",
		"Japan",
		"Mexico",
		"Morocco",
		"Netherlands",
		"Poland",
		"Portugal",
		"Qatar",
		"Saudi Arabia",
		"Senegal",
		"Serbia",
		"South Korea",
		"Spain",
		"Switzerland",
		"Tunisia",
		"Uruguay",
		"USA",
		"Wales",
	)
}
