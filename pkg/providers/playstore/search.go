package playstore

import (
	"context"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/sw33tLie/playscope/pkg/apps"
	"github.com/sw33tLie/playscope/pkg/providers"
)

const searchDataset = "ds:4"

// Paths inside ds:4. The featured result sits outside the result list, and
// the list itself lives in whichever section carries one; its index varies
// by country and language.
const (
	sectionsPath = "0.1"
	featuredPath = "23.16"
	listPath     = "22.0"
)

// Paths relative to a result list entry.
var searchItemPaths = struct {
	AppID, Title, Icon, Score, Genre, Price, Currency, Summary, Developer, Installs string
}{
	AppID:     "0.0.0",
	Title:     "0.3",
	Icon:      "0.1.3.2",
	Score:     "0.4.0",
	Genre:     "0.5",
	Price:     "0.8.1.0.0",
	Currency:  "0.8.1.0.1",
	Summary:   "0.13.1",
	Developer: "0.14",
	Installs:  "0.15",
}

// Paths relative to the featured result, which mirrors the detail layout.
var featuredPaths = struct {
	AppID, Title, Icon, Score, Genre, Developer, Price, Currency string
}{
	AppID:     "11.0.0",
	Title:     "2.0.0",
	Icon:      "2.95.0.3.2",
	Score:     "2.51.0.1",
	Genre:     "2.79.0.0.0",
	Developer: "2.68.0",
	Price:     "2.57.0.0.0.0.1.0.0",
	Currency:  "2.57.0.0.0.0.1.0.1",
}

// Search returns up to limit hits for query in relevance order. Only the
// first result page is read; a larger limit yields whatever that page has.
func (c *Client) Search(ctx context.Context, query string, limit int, loc providers.Locale) ([]apps.AppSummary, error) {
	if limit <= 0 {
		return []apps.AppSummary{}, nil
	}

	res, err := c.get(ctx, "/store/search", url.Values{"q": {query}, "c": {"apps"}}, loc)
	if err != nil {
		return nil, c.wrap("search", query, loc, err)
	}

	datasets, err := extractDatasets(res.BodyString)
	if err != nil {
		return nil, c.wrap("search", query, loc, err)
	}

	ds, ok := datasets[searchDataset]
	if !ok {
		// The page renders without the dataset when nothing matched.
		c.log.Debugf("[playstore] no %s dataset for %q in %s", searchDataset, query, loc)
		return []apps.AppSummary{}, nil
	}

	results := parseSearch(ds, limit)
	c.log.Debugf("[playstore] %q in %s: %d results", query, loc, len(results))
	return results, nil
}

func parseSearch(ds gjson.Result, limit int) []apps.AppSummary {
	sections := ds.Get(sectionsPath).Array()
	out := []apps.AppSummary{}

	if len(sections) > 0 {
		if featured := sections[0].Get(featuredPath); featured.IsArray() {
			if app := parseFeatured(featured); app.AppID != "" || app.Title != "" {
				out = append(out, app)
			}
		}
	}

	var list []gjson.Result
	for _, section := range sections {
		if l := section.Get(listPath); l.IsArray() {
			list = l.Array()
			break
		}
	}

	for _, item := range list {
		if len(out) >= limit {
			break
		}
		out = append(out, parseSearchItem(item))
	}

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func parseSearchItem(item gjson.Result) apps.AppSummary {
	p := searchItemPaths
	price := micros(item, p.Price)
	return apps.AppSummary{
		Title:     str(item, p.Title),
		AppID:     str(item, p.AppID),
		Score:     optFloat(item, p.Score),
		Developer: str(item, p.Developer),
		Icon:      str(item, p.Icon),
		Genre:     str(item, p.Genre),
		Price:     price,
		Free:      price == 0,
		Currency:  str(item, p.Currency),
		Installs:  str(item, p.Installs),
		Summary:   str(item, p.Summary),
	}
}

func parseFeatured(item gjson.Result) apps.AppSummary {
	p := featuredPaths
	price := micros(item, p.Price)
	return apps.AppSummary{
		Title:     str(item, p.Title),
		AppID:     str(item, p.AppID),
		Score:     optFloat(item, p.Score),
		Developer: str(item, p.Developer),
		Icon:      str(item, p.Icon),
		Genre:     str(item, p.Genre),
		Price:     price,
		Free:      price == 0,
		Currency:  str(item, p.Currency),
	}
}
