package whttp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendHTTPRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "whatsapp", r.URL.Query().Get("q"))
		assert.Equal(t, "in", r.URL.Query().Get("gl"))
		assert.Equal(t, "hi", r.Header.Get("Accept-Language"))
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><head><title>\n  Play Store\r\n</title></head><body>ok</body></html>"))
	}))
	defer server.Close()

	client, err := NewClient(ClientOptions{RetryMax: 0})
	require.NoError(t, err)

	res, err := SendHTTPRequest(context.Background(), &WHTTPReq{
		URL:     server.URL,
		Query:   url.Values{"q": {"whatsapp"}, "gl": {"in"}},
		Headers: []WHTTPHeader{{Name: "Accept-Language", Value: "hi"}},
	}, client)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Play Store", res.HTTPTitle)
	assert.Contains(t, res.BodyString, "<body>ok</body>")
	assert.Equal(t, len([]rune(res.BodyString)), res.ResponseLength)
}

func TestSendHTTPRequestNon2xxIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := NewClient(ClientOptions{})
	require.NoError(t, err)

	res, err := SendHTTPRequest(context.Background(), &WHTTPReq{URL: server.URL}, client)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Empty(t, res.HTTPTitle)
}

func TestNewClientRejectsBadProxy(t *testing.T) {
	_, err := NewClient(ClientOptions{Proxy: "://bad"})
	assert.Error(t, err)
}

func TestSendHTTPRequestWithoutClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	res, err := SendHTTPRequest(context.Background(), &WHTTPReq{URL: server.URL}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, res.StatusCode)
}
