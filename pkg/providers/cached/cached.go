// Package cached wraps a provider with an in-memory LRU, so a run that asks
// for the same scope twice (repeated queries, overlapping country lists)
// only fetches it once.
package cached

import (
	"context"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sw33tLie/playscope/pkg/apps"
	"github.com/sw33tLie/playscope/pkg/providers"
)

// DefaultSize is the number of search pages and detail records kept.
const DefaultSize = 256

// Provider caches successful responses of an inner provider. Errors are
// never cached.
type Provider struct {
	inner   providers.Provider
	search  *lru.Cache[string, []apps.AppSummary]
	details *lru.Cache[string, apps.AppDetail]
}

var _ providers.Provider = (*Provider)(nil)

// New wraps inner. A size <= 0 uses DefaultSize.
func New(inner providers.Provider, size int) *Provider {
	if size <= 0 {
		size = DefaultSize
	}
	search, _ := lru.New[string, []apps.AppSummary](size)
	details, _ := lru.New[string, apps.AppDetail](size)
	return &Provider{inner: inner, search: search, details: details}
}

func (p *Provider) Name() string { return p.inner.Name() }

func cacheKey(parts ...string) string {
	return strings.Join(parts, "\x00")
}

func (p *Provider) Search(ctx context.Context, query string, limit int, loc providers.Locale) ([]apps.AppSummary, error) {
	key := cacheKey(query, strconv.Itoa(limit), loc.Country, loc.Lang)
	if hit, ok := p.search.Get(key); ok {
		return cloneAll(hit), nil
	}

	results, err := p.inner.Search(ctx, query, limit, loc)
	if err != nil {
		return nil, err
	}
	p.search.Add(key, cloneAll(results))
	return results, nil
}

func (p *Provider) AppDetails(ctx context.Context, packageID string, loc providers.Locale) (*apps.AppDetail, error) {
	key := cacheKey(packageID, loc.Country, loc.Lang)
	if hit, ok := p.details.Get(key); ok {
		d := hit
		d.AppSummary = hit.AppSummary.Clone()
		return &d, nil
	}

	d, err := p.inner.AppDetails(ctx, packageID, loc)
	if err != nil {
		return nil, err
	}
	stored := *d
	stored.AppSummary = d.AppSummary.Clone()
	p.details.Add(key, stored)
	return d, nil
}

func cloneAll(in []apps.AppSummary) []apps.AppSummary {
	out := make([]apps.AppSummary, 0, len(in))
	for _, a := range in {
		out = append(out, a.Clone())
	}
	return out
}
