package stock

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"reelimages/pkg/httputil"
)

// Downloads carry full-size photos, so they get a longer timeout than
// search calls.
const downloadTimeout = 30 * time.Second

// Downloader fetches selected images and writes them to disk.
type Downloader struct {
	httpClient *http.Client
}

func NewDownloader() *Downloader {
	return &Downloader{
		httpClient: &http.Client{
			Timeout: downloadTimeout,
		},
	}
}

// Download fetches one image and writes it as
// <index>_<source>_<id>.<ext> inside dir, with the index zero-padded to
// two digits and the extension derived from the response Content-Type.
// index is 1-based. Returns the written file path.
func (d *Downloader) Download(ctx context.Context, img Image, dir string, index int) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, img.URL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := httputil.CheckStatus(resp); err != nil {
		return "", fmt.Errorf("download image: %w", err)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read image data: %w", err)
	}

	ext := httputil.ExtensionForContentType(resp.Header.Get("Content-Type"))
	filename := fmt.Sprintf("%02d_%s_%s.%s", index, img.Source, img.ID, ext)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return path, nil
}
