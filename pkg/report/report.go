// Package report prints search progress and results for humans.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/sw33tLie/playscope/pkg/apps"
	"github.com/sw33tLie/playscope/pkg/search"
)

const (
	ruleWidth      = 60
	descriptionCut = 200
	matchExact     = "exact match"
	matchRelevance = "relevance"
	notAvailable   = "N/A"
	listSep        = ", "
)

// Printer writes report lines to w.
type Printer struct {
	w  io.Writer
	st Styles
}

// New creates a Printer. Styles are plain when color is false.
func New(w io.Writer, color bool) *Printer {
	st := NoColorStyles()
	if color {
		st = DefaultStyles()
	}
	return &Printer{w: w, st: st}
}

// Auto creates a Printer that only colors when w is a terminal and NO_COLOR
// is unset.
func Auto(w io.Writer) *Printer {
	return New(w, IsTTY(w) && !NoColor())
}

func (p *Printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
}

func mode(exact bool) string {
	if exact {
		return matchExact
	}
	return matchRelevance
}

func upper(list []string) string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, strings.ToUpper(s))
	}
	return strings.Join(out, listSep)
}

func quoted(list []string) string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, `"`+s+`"`)
	}
	return strings.Join(out, listSep)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// SearchStart announces a single-country search.
func (p *Printer) SearchStart(query, country, lang string, exact bool) {
	p.printf("\n%s\n", p.st.Header.Render(fmt.Sprintf("🔍 Searching for: '%s' (Country: %s, Lang: %s, Mode: %s)...",
		query, strings.ToUpper(country), lang, mode(exact))))
}

// SearchResults prints the outcome of a single-country search.
func (p *Printer) SearchResults(query string, results []apps.AppSummary, exact bool) {
	if len(results) == 0 {
		if exact {
			p.printf("%s\n", p.st.Error.Render(fmt.Sprintf("❌ No exact matches found for '%s'.", query)))
			p.printf("%s\n", p.st.Warning.Render("💡 Tip: Try without --exact flag for broader results."))
			return
		}
		p.printf("%s\n", p.st.Error.Render("❌ No apps found matching your query."))
		return
	}

	p.printf("%s\n\n", p.st.Success.Render(fmt.Sprintf("✅ Found %d apps:", len(results))))
	for i, a := range results {
		p.printf("%d. %s\n", i+1, p.st.Title.Render(a.Title))
		p.field("📦 Package", a.AppID)
		p.field("⭐ Rating", a.ScoreString())
		p.field("👤 Developer", orNA(a.Developer))
		p.printf("\n")
	}
}

func (p *Printer) field(label, value string) {
	p.printf("   %s %s\n", p.st.Label.Render(label+":"), value)
}

// CountriesStart announces a multi-country search.
func (p *Printer) CountriesStart(query string, countries []string, exact bool) {
	p.printf("\n%s\n", p.st.Header.Render(fmt.Sprintf("🌍 Searching for: '%s' across %d countries (Mode: %s)...",
		query, len(countries), mode(exact))))
	p.printf("Countries: %s\n\n", upper(countries))
}

// CountryStart begins the progress line of one country.
func (p *Printer) CountryStart(country string) {
	p.printf("📍 Searching in %s... ", strings.ToUpper(country))
}

// CountryDone finishes the progress line started by CountryStart.
func (p *Printer) CountryDone(ev search.ScopeEvent) {
	switch {
	case ev.Err != nil:
		p.printf("%s\n", p.st.Error.Render(fmt.Sprintf("Error: %v", ev.Err)))
	case len(ev.Results) == 0:
		p.printf("No results\n")
	default:
		p.printf("Found %d (%d unique)\n", len(ev.Results), ev.New)
	}
}

// CountrySummary prints the unique apps of a multi-country search.
func (p *Printer) CountrySummary(unique []apps.AppSummary) {
	p.summary(fmt.Sprintf("📊 SUMMARY: Found %d unique apps across all countries", len(unique)))
	if len(unique) == 0 {
		p.printf("%s\n", p.st.Error.Render("❌ No apps found in any country."))
		return
	}
	for i, a := range unique {
		p.printf("%d. %s\n", i+1, p.st.Title.Render(a.Title))
		p.field("📦 Package", a.AppID)
		p.field("🌍 Found in", orNA(strings.ToUpper(a.FoundInCountry)))
		p.field("⭐ Rating", a.ScoreString())
		p.field("👤 Developer", orNA(a.Developer))
		p.printf("\n")
	}
}

// QueriesStart announces a multi-query search. An empty countries list means
// a single-country run in country.
func (p *Printer) QueriesStart(queries []string, country string, countries []string, exact bool) {
	if len(countries) > 0 {
		p.printf("\n%s\n", p.st.Header.Render(fmt.Sprintf("🔍 Multi-Query Search: %d queries across %d countries (Mode: %s)",
			len(queries), len(countries), mode(exact))))
		p.printf("Queries: %s\n", quoted(queries))
		p.printf("Countries: %s\n\n", upper(countries))
		return
	}
	p.printf("\n%s\n", p.st.Header.Render(fmt.Sprintf("🔍 Multi-Query Search: %d queries in %s (Mode: %s)",
		len(queries), strings.ToUpper(country), mode(exact))))
	p.printf("Queries: %s\n\n", quoted(queries))
}

// QueryStart prints the banner of one query.
func (p *Printer) QueryStart(ev search.ScopeEvent) {
	rule := p.st.Rule.Render(strings.Repeat("─", ruleWidth))
	p.printf("\n%s\n", rule)
	p.printf("Query %d/%d: \"%s\"\n", ev.Index, ev.Total, ev.Query)
	p.printf("%s\n", rule)
}

// QueryDone reports how many new unique apps a query contributed.
func (p *Printer) QueryDone(ev search.ScopeEvent) {
	if ev.Err != nil {
		p.printf("%s\n", p.st.Error.Render(fmt.Sprintf("❌ Error searching for '%s': %v", ev.Query, ev.Err)))
		return
	}
	p.printf("\n%s\n", p.st.Success.Render(fmt.Sprintf("✅ Added %d new unique apps from this query", ev.New)))
}

// QuerySummary prints the unique apps of a multi-query search.
func (p *Printer) QuerySummary(unique []apps.AppSummary) {
	p.summary(fmt.Sprintf("📊 COMBINED SUMMARY: Found %d unique apps across all queries", len(unique)))
	if len(unique) == 0 {
		p.printf("%s\n", p.st.Error.Render("❌ No apps found for any query."))
		return
	}
	for i, a := range unique {
		p.printf("%d. %s\n", i+1, p.st.Title.Render(a.Title))
		p.field("📦 Package", a.AppID)
		if len(a.FoundByQueries) > 0 {
			p.field("🔍 Found by", quoted(a.FoundByQueries))
		}
		if a.FoundInCountry != "" {
			p.field("🌍 Country", strings.ToUpper(a.FoundInCountry))
		}
		p.field("⭐ Rating", a.ScoreString())
		p.field("👤 Developer", orNA(a.Developer))
		p.printf("\n")
	}
}

func (p *Printer) summary(line string) {
	rule := p.st.Rule.Render(strings.Repeat("=", ruleWidth))
	p.printf("\n%s\n%s\n%s\n\n", rule, p.st.Header.Render(line), rule)
}

// DetailsStart announces a detail lookup.
func (p *Printer) DetailsStart(packageID, country, lang string) {
	p.printf("\n%s\n\n", p.st.Header.Render(fmt.Sprintf("📱 Fetching details for: %s (Country: %s, Lang: %s)...",
		packageID, strings.ToUpper(country), lang)))
}

// Details prints the full record of one app. The description is cut to its
// first 200 characters.
func (p *Printer) Details(d *apps.AppDetail) {
	price := "Free"
	if !d.Free {
		price = strings.TrimSpace(fmt.Sprintf("%g %s", d.Price, d.Currency))
	}
	updated := notAvailable
	if t := d.UpdatedAt(); !t.IsZero() {
		updated = t.Format("Jan 2, 2006")
	}

	p.printf("📌 App Name: %s\n", p.st.Title.Render(d.Title))
	p.printf("📦 Package: %s\n", d.AppID)
	p.printf("👤 Developer: %s\n", orNA(d.Developer))
	p.printf("⭐ Rating: %s (%d ratings)\n", d.ScoreString(), d.Ratings)
	p.printf("💾 Installs: %s\n", orNA(d.Installs))
	p.printf("💰 Price: %s\n", price)
	p.printf("🏷️  Category: %s\n", orNA(d.Genre))
	p.printf("📅 Updated: %s\n", updated)
	p.printf("📏 Size: %s\n", orNA(d.Size))
	p.printf("🔞 Content Rating: %s\n", orNA(d.ContentRating))
	p.printf("\n📝 Description:\n%s...\n", truncate(orNA(d.Description), descriptionCut))
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// Error prints a failure line.
func (p *Printer) Error(format string, args ...interface{}) {
	p.printf("%s\n", p.st.Error.Render("❌ "+fmt.Sprintf(format, args...)))
}

// Saved confirms an output file was written.
func (p *Printer) Saved(path string) {
	p.printf("\n%s\n", p.st.Success.Render("💾 Data saved to "+path))
}
