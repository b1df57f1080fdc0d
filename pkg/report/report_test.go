package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sw33tLie/playscope/pkg/apps"
	"github.com/sw33tLie/playscope/pkg/search"
)

func TestSearchResults(t *testing.T) {
	tests := []struct {
		name    string
		results []apps.AppSummary
		exact   bool
		want    []string
	}{
		{
			name:    "results",
			results: []apps.AppSummary{{Title: "WhatsApp Messenger", AppID: "com.whatsapp", Developer: "WhatsApp LLC", Score: apps.Float(4.3)}},
			want:    []string{"✅ Found 1 apps:", "1. WhatsApp Messenger", "📦 Package: com.whatsapp", "⭐ Rating: 4.3", "👤 Developer: WhatsApp LLC"},
		},
		{
			name:    "unrated",
			results: []apps.AppSummary{{Title: "New", AppID: "a.b"}},
			want:    []string{"⭐ Rating: N/A", "👤 Developer: N/A"},
		},
		{
			name: "empty",
			want: []string{"❌ No apps found matching your query."},
		},
		{
			name:  "empty exact",
			exact: true,
			want:  []string{"❌ No exact matches found for 'zzz'.", "💡 Tip: Try without --exact flag for broader results."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf, false).SearchResults("zzz", tt.results, tt.exact)
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestCountryProgress(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)

	p.CountriesStart("chat", []string{"us", "de"}, true)
	p.CountryStart("us")
	p.CountryDone(search.ScopeEvent{Results: make([]apps.AppSummary, 3), New: 2})
	p.CountryStart("de")
	p.CountryDone(search.ScopeEvent{Err: errors.New("blocked")})
	p.CountrySummary([]apps.AppSummary{{Title: "Chat", AppID: "a.chat", FoundInCountry: "us"}})

	out := buf.String()
	assert.Contains(t, out, "🌍 Searching for: 'chat' across 2 countries (Mode: exact match)...")
	assert.Contains(t, out, "Countries: US, DE")
	assert.Contains(t, out, "📍 Searching in US... Found 3 (2 unique)\n")
	assert.Contains(t, out, "📍 Searching in DE... Error: blocked\n")
	assert.Contains(t, out, "📊 SUMMARY: Found 1 unique apps across all countries")
	assert.Contains(t, out, "🌍 Found in: US")
}

func TestQueryProgress(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)

	p.QueriesStart([]string{"a", "b"}, "in", nil, false)
	p.QueryStart(search.ScopeEvent{Index: 1, Total: 2, Query: "a"})
	p.QueryDone(search.ScopeEvent{Query: "a", New: 4})
	p.QueryDone(search.ScopeEvent{Query: "b", Err: errors.New("timeout")})
	p.QuerySummary([]apps.AppSummary{{Title: "A", AppID: "x.a", FoundByQueries: []string{"a", "b"}}})

	out := buf.String()
	assert.Contains(t, out, "🔍 Multi-Query Search: 2 queries in IN (Mode: relevance)")
	assert.Contains(t, out, `Queries: "a", "b"`)
	assert.Contains(t, out, `Query 1/2: "a"`)
	assert.Contains(t, out, "✅ Added 4 new unique apps from this query")
	assert.Contains(t, out, "❌ Error searching for 'b': timeout")
	assert.Contains(t, out, "📊 COMBINED SUMMARY: Found 1 unique apps across all queries")
	assert.Contains(t, out, `🔍 Found by: "a", "b"`)
	assert.NotContains(t, out, "🌍 Country:")
}

func TestEmptySummaries(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)
	p.CountrySummary(nil)
	p.QuerySummary(nil)

	assert.Contains(t, buf.String(), "❌ No apps found in any country.")
	assert.Contains(t, buf.String(), "❌ No apps found for any query.")
}

func TestDetails(t *testing.T) {
	d := &apps.AppDetail{
		AppSummary: apps.AppSummary{
			Title: "Spotify", AppID: "com.spotify.music", Developer: "Spotify AB",
			Score: apps.Float(4.4), Free: true, Installs: "1,000,000,000+", Genre: "Music & Audio",
		},
		Ratings:     31000000,
		Description: strings.Repeat("é", 250),
		Updated:     1718000000,
	}

	var buf bytes.Buffer
	New(&buf, false).Details(d)
	out := buf.String()

	assert.Contains(t, out, "📌 App Name: Spotify")
	assert.Contains(t, out, "⭐ Rating: 4.4 (31000000 ratings)")
	assert.Contains(t, out, "💰 Price: Free")
	assert.Contains(t, out, "🏷️  Category: Music & Audio")
	assert.Contains(t, out, "📅 Updated: Jun 10, 2024")
	assert.Contains(t, out, "📏 Size: N/A")
	assert.Contains(t, out, strings.Repeat("é", 200)+"...")
	assert.NotContains(t, out, strings.Repeat("é", 201))
}

func TestPaidDetails(t *testing.T) {
	d := &apps.AppDetail{AppSummary: apps.AppSummary{Title: "Minecraft", Price: 6.99, Currency: "USD"}}

	var buf bytes.Buffer
	New(&buf, false).Details(d)
	assert.Contains(t, buf.String(), "💰 Price: 6.99 USD")
}

func TestSaved(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Saved("out.json")
	assert.Equal(t, "\n💾 Data saved to out.json\n", buf.String())
}
