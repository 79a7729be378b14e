// Package unsplash searches the Unsplash photo API.
package unsplash

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"reelimages/internal/stock"
	"reelimages/pkg/httputil"
)

const (
	defaultBaseURL = "https://api.unsplash.com"
	searchTimeout  = 10 * time.Second
)

type Client struct {
	accessKey  string
	httpClient *http.Client
	baseURL    string
}

func NewClient(accessKey string) *Client {
	return &Client{
		accessKey: accessKey,
		httpClient: &http.Client{
			Timeout: searchTimeout,
		},
		baseURL: defaultBaseURL,
	}
}

func (c *Client) Source() stock.Source {
	return stock.SourceUnsplash
}

// Search returns up to count portrait photos for the query.
func (c *Client) Search(ctx context.Context, query string, count int) ([]stock.Image, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(count))
	params.Set("orientation", "portrait")

	reqURL := fmt.Sprintf("%s/search/photos?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var searchResp searchResponse
	if err := httputil.DecodeJSON(resp, &searchResp); err != nil {
		return nil, fmt.Errorf("search unsplash: %w", err)
	}

	images := make([]stock.Image, 0, len(searchResp.Results))
	for _, r := range searchResp.Results {
		photographer := r.User.Name
		if photographer == "" {
			photographer = "Unknown"
		}
		images = append(images, stock.Image{
			URL:          r.URLs.Regular,
			Source:       stock.SourceUnsplash,
			ID:           r.ID,
			Photographer: photographer,
		})
	}

	return images, nil
}
