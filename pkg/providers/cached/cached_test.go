package cached

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sw33tLie/playscope/pkg/apps"
	"github.com/sw33tLie/playscope/pkg/providers"
	"github.com/sw33tLie/playscope/pkg/providers/test"
)

func TestSearchIsCachedPerScope(t *testing.T) {
	inner := &test.Provider{Results: map[string][]apps.AppSummary{
		test.Key("gpay", test.AnyCountry): test.Apps("pay", "GPay", "Google Pay"),
	}}
	p := New(inner, 0)
	ctx := context.Background()
	us := providers.Locale{Country: "us", Lang: "en"}

	first, err := p.Search(ctx, "gpay", 5, us)
	require.NoError(t, err)
	first[0].FoundInCountry = "mutated"

	second, err := p.Search(ctx, "gpay", 5, us)
	require.NoError(t, err)
	assert.Len(t, inner.Calls, 1)
	assert.Empty(t, second[0].FoundInCountry, "cached results must not alias caller slices")

	_, err = p.Search(ctx, "gpay", 5, providers.Locale{Country: "in", Lang: "en"})
	require.NoError(t, err)
	_, err = p.Search(ctx, "gpay", 6, us)
	require.NoError(t, err)
	assert.Len(t, inner.Calls, 3)
}

func TestErrorsAreNotCached(t *testing.T) {
	inner := &test.Provider{Failures: map[string]error{test.Key("x", "de"): errors.New("boom")}}
	p := New(inner, 4)
	de := providers.Locale{Country: "de", Lang: "en"}

	_, err := p.Search(context.Background(), "x", 5, de)
	require.Error(t, err)
	_, err = p.Search(context.Background(), "x", 5, de)
	require.Error(t, err)
	assert.Len(t, inner.Calls, 2)
}

func TestDetailsCached(t *testing.T) {
	inner := &test.Provider{Details: map[string]apps.AppDetail{
		"com.spotify.music": {AppSummary: apps.AppSummary{Title: "Spotify", AppID: "com.spotify.music"}},
	}}
	p := New(inner, 4)
	us := providers.Locale{Country: "us", Lang: "en"}

	for i := 0; i < 3; i++ {
		d, err := p.AppDetails(context.Background(), "com.spotify.music", us)
		require.NoError(t, err)
		assert.Equal(t, "Spotify", d.Title)
	}
	assert.Equal(t, []string{"com.spotify.music"}, inner.DetailCalls)

	_, err := p.AppDetails(context.Background(), "com.nope", us)
	assert.True(t, errors.Is(err, providers.ErrNotFound))
	assert.Equal(t, "test", p.Name())
}
