package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sw33tLie/playscope/internal/utils"
	"github.com/sw33tLie/playscope/pkg/apps"
	"github.com/sw33tLie/playscope/pkg/export"
	"github.com/sw33tLie/playscope/pkg/providers"
	"github.com/sw33tLie/playscope/pkg/providers/cached"
	"github.com/sw33tLie/playscope/pkg/providers/playstore"
	"github.com/sw33tLie/playscope/pkg/report"
	"github.com/sw33tLie/playscope/pkg/search"
)

func runRoot(cmd *cobra.Command, args []string) error {
	o, err := readOptions(cmd, args)
	if err != nil {
		return err
	}
	if !o.hasAction() {
		return cmd.Help()
	}
	if err := o.validate(); err != nil {
		return err
	}

	p, err := newProvider()
	if err != nil {
		return err
	}

	r := &runner{provider: p, out: report.Auto(os.Stdout), log: utils.Log}
	r.run(cmd.Context(), o)
	return nil
}

// newProvider builds the Play Store client from the config. A negative
// cache.size turns the cache off.
func newProvider() (providers.Provider, error) {
	client, err := playstore.New(playstore.Options{
		BaseURL:   viper.GetString("playstore.base_url"),
		Timeout:   viper.GetDuration("playstore.timeout"),
		Retries:   viper.GetInt("playstore.retries"),
		RateLimit: viper.GetFloat64("playstore.rate"),
		Proxy:     viper.GetString("proxy"),
		Log:       utils.Log,
	})
	if err != nil {
		return nil, err
	}

	size := viper.GetInt("cache.size")
	if size < 0 {
		return client, nil
	}
	return cached.New(client, size), nil
}

// runner executes one validated command line.
type runner struct {
	provider providers.Provider
	out      *report.Printer
	log      search.Logger
}

// run performs the requested searches in order: --search, then --queries,
// then --package. The value saved with --output is the last one produced.
func (r *runner) run(ctx context.Context, o *options) {
	checkLang(o.Lang, r.log)

	countries := o.countries()
	s := search.New(r.provider, search.WithLogger(r.log), search.WithHooks(r.hooks(o, countries)))

	var result interface{}

	if o.Search != "" {
		if countries != nil {
			r.out.CountriesStart(o.Search, countries, o.Exact)
			res := s.SearchCountries(ctx, o.Search, countries, o.searchOptions())
			r.out.CountrySummary(res.UniqueApps)
			result = res
		} else {
			result = r.single(ctx, s, o.Search, o)
		}
	}

	if len(o.Queries) > 0 {
		r.out.QueriesStart(o.Queries, o.Country, countries, o.Exact)
		res := s.SearchQueries(ctx, o.Queries, o.Country, countries, o.searchOptions())
		r.out.QuerySummary(res.UniqueApps)
		result = res
	}

	if o.Package != "" {
		r.out.DetailsStart(o.Package, o.Country, o.Lang)
		d, err := s.Details(ctx, o.Package, o.Country, o.Lang)
		if err != nil {
			r.out.Error("Error fetching app details: %v", err)
			result = nil
		} else {
			r.out.Details(d)
			result = d
		}
	}

	if o.Output != "" && hasData(result) {
		if err := export.SaveJSON(o.Output, result); err != nil {
			r.out.Error("Error saving to JSON: %v", err)
			return
		}
		r.out.Saved(o.Output)
	}
}

func (r *runner) single(ctx context.Context, s *search.Searcher, query string, o *options) []apps.AppSummary {
	r.out.SearchStart(query, o.Country, o.Lang, o.Exact)
	results, err := s.Search(ctx, query, o.Country, o.searchOptions())
	if err != nil {
		r.out.Error("Error searching apps: %v", err)
		return nil
	}
	r.out.SearchResults(query, results, o.Exact)
	return results
}

// hooks prints per-scope progress. Single-country query runs also print the
// search header and results of every query, since no country lines are
// printed for them.
func (r *runner) hooks(o *options, countries []string) search.Hooks {
	return search.Hooks{
		BeforeScope: func(ev search.ScopeEvent) {
			switch ev.Kind {
			case search.CountryScope:
				r.out.CountryStart(ev.Country)
			case search.QueryScope:
				r.out.QueryStart(ev)
				if countries == nil {
					r.out.SearchStart(ev.Query, o.Country, o.Lang, o.Exact)
				}
			}
		},
		AfterScope: func(ev search.ScopeEvent) {
			switch ev.Kind {
			case search.CountryScope:
				r.out.CountryDone(ev)
			case search.QueryScope:
				if countries == nil && ev.Err == nil {
					r.out.SearchResults(ev.Query, ev.Results, o.Exact)
				}
				r.out.QueryDone(ev)
			}
		},
	}
}

// hasData reports whether result is worth saving. Multi-scope results are
// always saved, even with no apps, so the per-scope breakdown is kept.
func hasData(result interface{}) bool {
	switch v := result.(type) {
	case nil:
		return false
	case []apps.AppSummary:
		return len(v) > 0
	case *apps.AppDetail:
		return v != nil
	case *search.CountryResult:
		return v != nil
	case *search.QueryResult:
		return v != nil
	default:
		return false
	}
}
