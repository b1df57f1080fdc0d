package search

import (
	"context"
	"strings"

	"github.com/sw33tLie/playscope/pkg/apps"
	"github.com/sw33tLie/playscope/pkg/dedup"
	"github.com/sw33tLie/playscope/pkg/providers"
)

// SearchCountries runs query in every country, in order. Each country keeps up
// to opts.Limit results (fetching MultiOverFetch times that in exact mode).
// The unique apps across all countries are tagged with the first country
// that returned them. A failing country is logged, recorded with no results
// and does not stop the others. An empty list means DefaultCountries.
func (s *Searcher) SearchCountries(ctx context.Context, query string, countries []string, opts Options) *CountryResult {
	opts = opts.withDefaults()
	if len(countries) == 0 {
		countries = DefaultCountries
	}

	fetch := opts.Limit
	if opts.Exact {
		fetch = opts.Limit * MultiOverFetch
	}

	res := &CountryResult{ByCountry: NewScopes()}
	seen := dedup.NewSet(nil)

	for i, country := range countries {
		ev := ScopeEvent{Kind: CountryScope, Index: i + 1, Total: len(countries), Query: query, Country: country}
		s.before(ev)

		loc := providers.Locale{Country: country, Lang: opts.Lang}
		results, err := s.provider.Search(ctx, query, fetch, loc)
		if err != nil {
			s.log.Warnf("Search for %q in %s failed: %v", query, strings.ToUpper(country), err)
			res.ByCountry.Set(country, []apps.AppSummary{})
			res.Errors = append(res.Errors, err)
			ev.Err = err
			s.after(ev)
			continue
		}

		results = narrow(results, query, opts)
		res.ByCountry.Set(country, results)

		added := seen.Merge(results, dedup.Provenance{Country: country})
		s.log.Debugf("%s: %d results, %d unique", strings.ToUpper(country), len(results), len(added))

		ev.Results = results
		ev.New = len(added)
		s.after(ev)
	}

	res.UniqueApps = seen.Items()
	return res
}
