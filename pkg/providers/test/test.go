package test

import (
	"context"
	"fmt"

	"github.com/sw33tLie/playscope/pkg/apps"
	"github.com/sw33tLie/playscope/pkg/providers"
)

// AnyCountry matches every country in Provider.Results keys.
const AnyCountry = "*"

// Call records one Search invocation.
type Call struct {
	Query  string
	Limit  int
	Locale providers.Locale
}

// Provider serves canned results and records every call. It is used by the
// orchestrator and CLI tests.
type Provider struct {
	// Results maps Key(query, country) to the full ranked result list.
	Results map[string][]apps.AppSummary
	// Details maps package id to its record.
	Details map[string]apps.AppDetail
	// Failures maps Key(query, country) to the error to return instead.
	Failures map[string]error

	Calls       []Call
	DetailCalls []string
}

var _ providers.Provider = (*Provider)(nil)

// Key builds the lookup key for Results and Failures.
func Key(query, country string) string {
	return query + "|" + country
}

func (p *Provider) Name() string { return "test" }

func (p *Provider) Search(ctx context.Context, query string, limit int, loc providers.Locale) ([]apps.AppSummary, error) {
	p.Calls = append(p.Calls, Call{Query: query, Limit: limit, Locale: loc})

	for _, k := range []string{Key(query, loc.Country), Key(query, AnyCountry)} {
		if err, ok := p.Failures[k]; ok {
			return nil, &providers.Error{Provider: p.Name(), Op: "search", Target: query, Locale: loc, Err: err}
		}
	}

	all, ok := p.Results[Key(query, loc.Country)]
	if !ok {
		all = p.Results[Key(query, AnyCountry)]
	}

	out := []apps.AppSummary{}
	for _, a := range all {
		if len(out) >= limit {
			break
		}
		out = append(out, a.Clone())
	}
	return out, nil
}

func (p *Provider) AppDetails(ctx context.Context, packageID string, loc providers.Locale) (*apps.AppDetail, error) {
	p.DetailCalls = append(p.DetailCalls, packageID)

	d, ok := p.Details[packageID]
	if !ok {
		return nil, &providers.Error{Provider: p.Name(), Op: "details", Target: packageID, Locale: loc, Err: providers.ErrNotFound}
	}
	return &d, nil
}

// Apps builds summaries with ids "<prefix>.<n>" and titles from titles.
func Apps(prefix string, titles ...string) []apps.AppSummary {
	out := make([]apps.AppSummary, 0, len(titles))
	for i, t := range titles {
		out = append(out, apps.AppSummary{
			Title:     t,
			AppID:     fmt.Sprintf("%s.%d", prefix, i+1),
			Developer: "Test Dev",
			Score:     apps.Float(4),
		})
	}
	return out
}
