package search

import (
	"context"

	"github.com/sw33tLie/playscope/pkg/apps"
	"github.com/sw33tLie/playscope/pkg/dedup"
)

// SearchQueries runs every query in order, either in the single country
// (countries empty) or across countries via SearchCountries. Unique apps
// across all queries record every query that found them, in query order.
// A failing query is logged, recorded with no results, and the run goes on.
func (s *Searcher) SearchQueries(ctx context.Context, queries []string, country string, countries []string, opts Options) *QueryResult {
	opts = opts.withDefaults()

	res := &QueryResult{ByQuery: NewScopes()}
	seen := dedup.NewSet(nil)

	for i, query := range queries {
		ev := ScopeEvent{Kind: QueryScope, Index: i + 1, Total: len(queries), Query: query, Country: country}
		s.before(ev)

		var (
			results []apps.AppSummary
			err     error
		)
		if len(countries) > 0 {
			sub := s.SearchCountries(ctx, query, countries, opts)
			results = sub.UniqueApps
			res.Errors = append(res.Errors, sub.Errors...)
		} else {
			results, err = s.Search(ctx, query, country, opts)
		}

		if err != nil {
			s.log.Warnf("Search for %q failed: %v", query, err)
			res.ByQuery.Set(query, []apps.AppSummary{})
			res.Errors = append(res.Errors, err)
			ev.Err = err
			s.after(ev)
			continue
		}

		res.ByQuery.Set(query, results)
		added := seen.Merge(results, dedup.FromQuery(query))

		ev.Results = results
		ev.New = len(added)
		s.after(ev)
	}

	res.UniqueApps = seen.Items()
	return res
}
