// Package apps defines the app records returned by providers and the
// identity used to deduplicate them.
package apps

import (
	"strconv"
	"time"
)

// AppSummary is a single search hit as returned by a provider. The two
// trailing fields are never set by providers; the search orchestrator adds
// them while deduplicating across countries and queries.
type AppSummary struct {
	Title     string   `json:"title"`
	AppID     string   `json:"appId"`
	Score     *float64 `json:"score"`
	Developer string   `json:"developer,omitempty"`
	Icon      string   `json:"icon,omitempty"`
	Genre     string   `json:"genre,omitempty"`
	Price     float64  `json:"price"`
	Free      bool     `json:"free"`
	Currency  string   `json:"currency,omitempty"`
	Installs  string   `json:"installs,omitempty"`
	Summary   string   `json:"summary,omitempty"`

	FoundInCountry string   `json:"found_in_country,omitempty"`
	FoundByQueries []string `json:"found_by_queries,omitempty"`
}

// AppDetail is the full record of a single package.
type AppDetail struct {
	AppSummary

	Description      string `json:"description"`
	MinInstalls      int64  `json:"minInstalls"`
	RealInstalls     int64  `json:"realInstalls"`
	Ratings          int64  `json:"ratings"`
	Reviews          int64  `json:"reviews"`
	GenreID          string `json:"genreId,omitempty"`
	ContentRating    string `json:"contentRating,omitempty"`
	Size             string `json:"size,omitempty"`
	Version          string `json:"version,omitempty"`
	Updated          int64  `json:"updated,omitempty"`
	DeveloperEmail   string `json:"developerEmail,omitempty"`
	DeveloperWebsite string `json:"developerWebsite,omitempty"`
	DeveloperDomain  string `json:"developerDomain,omitempty"`
	URL              string `json:"url"`
}

// Clone returns a deep copy, so annotations can be added without touching
// the provider's slice.
func (a AppSummary) Clone() AppSummary {
	c := a
	if a.Score != nil {
		s := *a.Score
		c.Score = &s
	}
	if a.FoundByQueries != nil {
		c.FoundByQueries = append([]string(nil), a.FoundByQueries...)
	}
	return c
}

// ScoreString formats the rating the way it is shown to users: "N/A" when absent.
func (a AppSummary) ScoreString() string {
	if a.Score == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*a.Score, 'f', -1, 64)
}

// UpdatedAt converts the provider's unix timestamp. Zero when unknown.
func (d AppDetail) UpdatedAt() time.Time {
	if d.Updated <= 0 {
		return time.Time{}
	}
	return time.Unix(d.Updated, 0).UTC()
}

// Float is a helper for building optional scores.
func Float(f float64) *float64 { return &f }
