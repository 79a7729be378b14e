// Package stock defines the common shape of stock photo search results
// and the selection policy applied across providers.
package stock

import "context"

// Source identifies a stock photo provider.
type Source string

const (
	SourcePexels   Source = "pexels"
	SourceUnsplash Source = "unsplash"
)

// Image is one provider search result normalized to a common shape.
// Identity for deduplication is (Source, ID), not the URL.
type Image struct {
	URL          string
	Source       Source
	ID           string
	Photographer string
}

// Key is the composite identity used for deduplication.
func (i Image) Key() string {
	return string(i.Source) + "_" + i.ID
}

// Searcher is a provider search client. Implementations return up to count
// portrait-orientation results; fewer is not an error.
type Searcher interface {
	Source() Source
	Search(ctx context.Context, query string, count int) ([]Image, error)
}
