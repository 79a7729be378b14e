// Package pexels searches the Pexels photo API.
package pexels

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
	defaultBaseURL = "https://api.pexels.com/v1"
	searchTimeout  = 10 * time.Second
)

type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: searchTimeout,
		},
		baseURL: defaultBaseURL,
	}
}

func (c *Client) Source() stock.Source {
	return stock.SourcePexels
}

// Search returns up to count portrait photos for the query. Pexels ids are
// numeric on the wire; they are formatted to strings so identity keys are
// uniform across providers.
func (c *Client) Search(ctx context.Context, query string, count int) ([]stock.Image, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(count))
	params.Set("orientation", "portrait")

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var searchResp searchResponse
	if err := httputil.DecodeJSON(resp, &searchResp); err != nil {
		return nil, fmt.Errorf("search pexels: %w", err)
	}

	images := make([]stock.Image, 0, len(searchResp.Photos))
	for _, p := range searchResp.Photos {
		photographer := p.Photographer
		if photographer == "" {
			photographer = "Unknown"
		}
		images = append(images, stock.Image{
			URL:          p.Src.Large2x,
			Source:       stock.SourcePexels,
			ID:           strconv.FormatInt(p.ID, 10),
			Photographer: photographer,
		})
	}

	return images, nil
}
