package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sw33tLie/playscope/pkg/apps"
)

var (
	// ErrNotFound is returned when the requested package does not exist in the
	// requested locale.
	ErrNotFound = errors.New("app not found")
	// ErrUnexpectedStatus is returned for non-2xx responses other than 404.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
	// ErrMalformedPage is returned when a response cannot be parsed.
	ErrMalformedPage = errors.New("malformed store page")
)

// Locale selects the regional catalog (Country) and the language of the
// returned text (Lang).
type Locale struct {
	Country string
	Lang    string
}

func (l Locale) String() string {
	return strings.ToUpper(l.Country) + "/" + l.Lang
}

// Provider abstracts a store data source. Search results are ordered by
// relevance; an empty slice means no results and is not an error.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string, limit int, loc Locale) ([]apps.AppSummary, error)
	AppDetails(ctx context.Context, packageID string, loc Locale) (*apps.AppDetail, error)
}

// Error is the error type providers return for failed fetches.
type Error struct {
	Provider string
	Op       string // "search" or "details"
	Target   string // the query or package id
	Locale   Locale
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s %q (%s): %v", e.Provider, e.Op, e.Target, e.Locale, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
