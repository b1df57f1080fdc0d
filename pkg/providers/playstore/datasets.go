package playstore

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"

	"github.com/sw33tLie/playscope/pkg/providers"
)

var (
	datasetKeyRe  = regexp.MustCompile(`key:\s*'(ds:\d+)'`)
	datasetDataRe = regexp.MustCompile(`(?s)data:(.*),\s*sideChannel:\s*\{\}\}\);?\s*$`)
)

// extractDatasets returns the AF_initDataCallback payloads of a store page,
// keyed by dataset name ("ds:4", "ds:5", ...).
func extractDatasets(body string) (map[string]gjson.Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", providers.ErrMalformedPage, err)
	}

	datasets := map[string]gjson.Result{}
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if !strings.HasPrefix(text, "AF_initDataCallback") {
			return
		}

		key := datasetKeyRe.FindStringSubmatch(text)
		data := datasetDataRe.FindStringSubmatch(text)
		if key == nil || data == nil {
			return
		}
		if !gjson.Valid(data[1]) {
			return
		}
		datasets[key[1]] = gjson.Parse(data[1])
	})

	return datasets, nil
}

func str(r gjson.Result, path string) string {
	return strings.TrimSpace(r.Get(path).String())
}

// optFloat returns nil when the value is missing or null, so an unrated app
// is not reported with a score of zero.
func optFloat(r gjson.Result, path string) *float64 {
	v := r.Get(path)
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	f := v.Float()
	return &f
}

// micros converts the store's price representation (millionths of the
// currency unit) to a float.
func micros(r gjson.Result, path string) float64 {
	return float64(r.Get(path).Int()) / 1e6
}
