// Package dedup keeps an ordered, identity-keyed set of app records and
// tracks where each one was found.
package dedup

import "github.com/sw33tLie/playscope/pkg/apps"

// KeyFunc derives the identity used to detect duplicates.
type KeyFunc func(apps.AppSummary) apps.Identity

// Provenance describes the scope a record was seen in. An empty Country is
// ignored. Query is recorded only when HasQuery is set, so the empty query
// is recorded like any other.
type Provenance struct {
	Country  string
	Query    string
	HasQuery bool
}

// FromQuery is the provenance of a record returned for query.
func FromQuery(query string) Provenance {
	return Provenance{Query: query, HasQuery: true}
}

// Set holds unique records in first-seen order. The first record for an
// identity is kept; later sightings only extend its annotations.
type Set struct {
	key   KeyFunc
	index map[apps.Identity]int
	items []apps.AppSummary
}

// NewSet creates an empty set. A nil key uses apps.IdentityOf.
func NewSet(key KeyFunc) *Set {
	if key == nil {
		key = apps.IdentityOf
	}
	return &Set{
		key:   key,
		index: make(map[apps.Identity]int),
	}
}

// Add inserts app unless its identity is already present, and records p on
// the kept record. The country of a kept record is never overwritten; queries
// are appended once each. Returns true if app was new.
func (s *Set) Add(app apps.AppSummary, p Provenance) bool {
	id := s.key(app)
	if i, ok := s.index[id]; ok {
		annotate(&s.items[i], p, false)
		return false
	}

	kept := app.Clone()
	annotate(&kept, p, true)
	s.index[id] = len(s.items)
	s.items = append(s.items, kept)
	return true
}

// Merge adds every record of stream in order and returns the ones that were new.
func (s *Set) Merge(stream []apps.AppSummary, p Provenance) []apps.AppSummary {
	added := []apps.AppSummary{}
	for _, a := range stream {
		if s.Add(a, p) {
			added = append(added, s.items[len(s.items)-1].Clone())
		}
	}
	return added
}

// Contains reports whether a record with the same identity is in the set.
func (s *Set) Contains(app apps.AppSummary) bool {
	_, ok := s.index[s.key(app)]
	return ok
}

func (s *Set) Len() int { return len(s.items) }

// Items returns a copy of the unique records in first-seen order.
func (s *Set) Items() []apps.AppSummary {
	out := make([]apps.AppSummary, 0, len(s.items))
	for _, a := range s.items {
		out = append(out, a.Clone())
	}
	return out
}

func annotate(a *apps.AppSummary, p Provenance, first bool) {
	if first && p.Country != "" && a.FoundInCountry == "" {
		a.FoundInCountry = p.Country
	}
	if p.HasQuery {
		a.FoundByQueries = appendUnique(a.FoundByQueries, p.Query)
	}
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
