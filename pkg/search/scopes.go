package search

import (
	"bytes"
	"encoding/json"

	"github.com/sw33tLie/playscope/pkg/apps"
)

// ScopeKind says whether a scope is a country or a query.
type ScopeKind int

const (
	CountryScope ScopeKind = iota + 1
	QueryScope
)

// ScopeEvent is passed to Hooks. Index is 1-based; Results and New are only
// set after the scope ran, Err only when it failed.
type ScopeEvent struct {
	Kind    ScopeKind
	Index   int
	Total   int
	Query   string
	Country string
	Results []apps.AppSummary
	New     int
	Err     error
}

// Scopes maps a scope key (country code or query) to the results of that
// scope before deduplication. Keys keep insertion order, also when marshaled.
type Scopes struct {
	keys    []string
	results map[string][]apps.AppSummary
}

func NewScopes() *Scopes {
	return &Scopes{results: make(map[string][]apps.AppSummary)}
}

// Set records results for key. Setting a key again replaces its results but
// keeps its original position.
func (s *Scopes) Set(key string, results []apps.AppSummary) {
	if results == nil {
		results = []apps.AppSummary{}
	}
	if _, ok := s.results[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.results[key] = results
}

func (s *Scopes) Get(key string) ([]apps.AppSummary, bool) {
	r, ok := s.results[key]
	return r, ok
}

func (s *Scopes) Keys() []string {
	return append([]string(nil), s.keys...)
}

func (s *Scopes) Len() int { return len(s.keys) }

// MarshalJSON writes an object whose members follow insertion order.
func (s *Scopes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalLiteral(k)
		if err != nil {
			return nil, err
		}
		val, err := marshalLiteral(s.results[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalLiteral is json.Marshal without HTML escaping, so titles such as
// "Tom & Jerry" are written as-is.
func marshalLiteral(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// CountryResult is the outcome of a multi-country search.
type CountryResult struct {
	ByCountry  *Scopes           `json:"by_country"`
	UniqueApps []apps.AppSummary `json:"unique_apps"`
	// Errors holds the failures of individual countries.
	Errors []error `json:"-"`
}

// QueryResult is the outcome of a multi-query search.
type QueryResult struct {
	ByQuery    *Scopes           `json:"by_query"`
	UniqueApps []apps.AppSummary `json:"unique_apps"`
	Errors     []error           `json:"-"`
}
