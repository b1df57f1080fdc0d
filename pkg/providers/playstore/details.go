package playstore

import (
	"context"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/weppos/publicsuffix-go/publicsuffix"

	"github.com/sw33tLie/playscope/pkg/apps"
	"github.com/sw33tLie/playscope/pkg/providers"
)

const (
	detailsDataset = "ds:5"
	detailsRoot    = "1.2"
)

// Paths relative to detailsRoot.
var detailPaths = struct {
	Title, Description, Summary, Installs, MinInstalls, RealInstalls, Score, Ratings, Reviews string
	Price, Currency, Developer, DeveloperEmail, DeveloperWebsite, Genre, GenreID, Icon      string
	ContentRating, Updated, Version, Size                                                   string
}{
	Title:            "0.0",
	Description:      "72.0.1",
	Summary:          "73.0.1",
	Installs:         "13.0",
	MinInstalls:      "13.1",
	RealInstalls:     "13.2",
	Score:            "51.0.1",
	Ratings:          "51.2.1",
	Reviews:          "51.3.1",
	Price:            "57.0.0.0.0.1.0.0",
	Currency:         "57.0.0.0.0.1.0.1",
	Developer:        "68.0",
	DeveloperEmail:   "69.1.0",
	DeveloperWebsite: "69.0.5.2",
	Genre:            "79.0.0.0",
	GenreID:          "79.0.0.2",
	Icon:             "95.0.3.2",
	ContentRating:    "9.0",
	Updated:          "145.0.1.0",
	Version:          "140.0.0.0",
	Size:             "140.0.1.0",
}

// AppDetails returns the detail record of packageID. A package unknown to the
// store yields an error wrapping providers.ErrNotFound.
func (c *Client) AppDetails(ctx context.Context, packageID string, loc providers.Locale) (*apps.AppDetail, error) {
	packageID = strings.TrimSpace(packageID)
	if packageID == "" {
		return nil, c.wrap("details", packageID, loc, providers.ErrNotFound)
	}

	res, err := c.get(ctx, "/store/apps/details", url.Values{"id": {packageID}}, loc)
	if err != nil {
		return nil, c.wrap("details", packageID, loc, err)
	}

	datasets, err := extractDatasets(res.BodyString)
	if err != nil {
		return nil, c.wrap("details", packageID, loc, err)
	}

	root := datasets[detailsDataset].Get(detailsRoot)
	if !root.Exists() || str(root, detailPaths.Title) == "" {
		return nil, c.wrap("details", packageID, loc, providers.ErrMalformedPage)
	}

	d := parseDetails(root)
	d.AppID = packageID
	d.URL = c.baseURL + "/store/apps/details?" + url.Values{"id": {packageID}, "hl": {loc.Lang}, "gl": {loc.Country}}.Encode()
	return d, nil
}

func parseDetails(root gjson.Result) *apps.AppDetail {
	p := detailPaths
	price := micros(root, p.Price)
	website := str(root, p.DeveloperWebsite)

	return &apps.AppDetail{
		AppSummary: apps.AppSummary{
			Title:     str(root, p.Title),
			Score:     optFloat(root, p.Score),
			Developer: str(root, p.Developer),
			Icon:      str(root, p.Icon),
			Genre:     str(root, p.Genre),
			Price:     price,
			Free:      price == 0,
			Currency:  str(root, p.Currency),
			Installs:  str(root, p.Installs),
			Summary:   str(root, p.Summary),
		},
		Description:      str(root, p.Description),
		MinInstalls:      root.Get(p.MinInstalls).Int(),
		RealInstalls:     root.Get(p.RealInstalls).Int(),
		Ratings:          root.Get(p.Ratings).Int(),
		Reviews:          root.Get(p.Reviews).Int(),
		GenreID:          str(root, p.GenreID),
		ContentRating:    str(root, p.ContentRating),
		Size:             str(root, p.Size),
		Version:          str(root, p.Version),
		Updated:          root.Get(p.Updated).Int(),
		DeveloperEmail:   str(root, p.DeveloperEmail),
		DeveloperWebsite: website,
		DeveloperDomain:  registrableDomain(website),
	}
}

// registrableDomain reduces a developer website to its registrable domain,
// e.g. "https://www.spotify.com/legal" -> "spotify.com".
func registrableDomain(website string) string {
	if website == "" {
		return ""
	}
	if !strings.Contains(website, "://") {
		website = "https://" + website
	}
	u, err := url.Parse(website)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	domain, err := publicsuffix.Domain(u.Hostname())
	if err != nil {
		return ""
	}
	return domain
}
