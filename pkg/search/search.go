// Package search composes a provider, the close-match filter and the
// deduplicator into the single-country, multi-country and multi-query search
// modes. Everything runs sequentially: each fetch finishes before the next
// one starts.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/sw33tLie/playscope/pkg/apps"
	"github.com/sw33tLie/playscope/pkg/match"
	"github.com/sw33tLie/playscope/pkg/providers"
)

const (
	DefaultLimit   = 10
	DefaultCountry = "us"
	DefaultLang    = "en"

	// Exact-match mode fetches more candidates than requested, since
	// filtering drops some of them.
	SingleOverFetch = 3
	MultiOverFetch  = 2
)

// DefaultCountries is the country list used when a multi-country search is
// not given one.
var DefaultCountries = []string{"us", "in", "uk", "jp", "au", "ca", "de", "fr", "br", "kr", "sg"}

// Logger abstracts logging so callers can use logrus, stdlib log, or any
// other logger that satisfies this interface.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// nopLogger silently discards all messages.
type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Debugf(string, ...interface{}) {}

// Options controls a search. Zero values use the defaults above.
type Options struct {
	Limit int
	Exact bool
	Lang  string
}

func (o Options) withDefaults() Options {
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Lang == "" {
		o.Lang = DefaultLang
	}
	return o
}

// Hooks are optional progress callbacks, invoked synchronously around every
// country or query scope. Nil hooks are skipped.
type Hooks struct {
	BeforeScope func(ScopeEvent)
	AfterScope  func(ScopeEvent)
}

// Searcher runs searches against a provider.
type Searcher struct {
	provider providers.Provider
	log      Logger
	hooks    Hooks
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l Logger) Option {
	return func(s *Searcher) {
		if l != nil {
			s.log = l
		}
	}
}

// WithHooks sets the progress callbacks.
func WithHooks(h Hooks) Option {
	return func(s *Searcher) { s.hooks = h }
}

// New creates a Searcher backed by p.
func New(p providers.Provider, opts ...Option) *Searcher {
	s := &Searcher{provider: p, log: nopLogger{}}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Search runs one query in one country. In exact mode it fetches
// SingleOverFetch times the limit, keeps the close matches and truncates;
// otherwise it fetches and truncates to the limit. A provider failure is
// returned to the caller.
func (s *Searcher) Search(ctx context.Context, query, country string, opts Options) ([]apps.AppSummary, error) {
	opts = opts.withDefaults()
	if country == "" {
		country = DefaultCountry
	}

	fetch := opts.Limit
	if opts.Exact {
		fetch = opts.Limit * SingleOverFetch
	}

	loc := providers.Locale{Country: country, Lang: opts.Lang}
	s.log.Debugf("Searching %q in %s (fetching %d)", query, loc, fetch)

	results, err := s.provider.Search(ctx, query, fetch, loc)
	if err != nil {
		return nil, fmt.Errorf("searching %q in %s: %w", query, strings.ToUpper(country), err)
	}
	return narrow(results, query, opts), nil
}

// Details fetches the record of a single package.
func (s *Searcher) Details(ctx context.Context, packageID, country, lang string) (*apps.AppDetail, error) {
	if country == "" {
		country = DefaultCountry
	}
	if lang == "" {
		lang = DefaultLang
	}

	loc := providers.Locale{Country: country, Lang: lang}
	s.log.Debugf("Fetching details for %s in %s", packageID, loc)

	d, err := s.provider.AppDetails(ctx, packageID, loc)
	if err != nil {
		return nil, fmt.Errorf("fetching details for %s: %w", packageID, err)
	}
	return d, nil
}

// narrow applies the exact-match filter when requested and truncates to the
// limit. The result is always a fresh, non-nil slice.
func narrow(results []apps.AppSummary, query string, opts Options) []apps.AppSummary {
	if opts.Exact {
		results = match.Filter(results, query)
	}
	if len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	out := make([]apps.AppSummary, 0, len(results))
	for _, r := range results {
		out = append(out, r.Clone())
	}
	return out
}

func (s *Searcher) before(ev ScopeEvent) {
	if s.hooks.BeforeScope != nil {
		s.hooks.BeforeScope(ev)
	}
}

func (s *Searcher) after(ev ScopeEvent) {
	if s.hooks.AfterScope != nil {
		s.hooks.AfterScope(ev)
	}
}
