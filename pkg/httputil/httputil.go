// Package httputil carries the HTTP plumbing shared by the provider
// clients and the image downloader.
package httputil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// CheckStatus returns an error for any non-200 response, including a
// truncated body excerpt for the operator.
func CheckStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(body)))
}

// DecodeJSON checks the response status and decodes the body into out.
func DecodeJSON(resp *http.Response, out any) error {
	if err := CheckStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ExtensionForContentType maps a Content-Type header to a file extension.
// A missing header is treated as image/jpeg; jpeg maps to "jpg", anything
// else uses the MIME subtype verbatim.
func ExtensionForContentType(contentType string) string {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	contentType = strings.TrimSpace(contentType)

	if strings.Contains(contentType, "jpeg") {
		return "jpg"
	}
	if i := strings.LastIndex(contentType, "/"); i >= 0 {
		return contentType[i+1:]
	}
	return contentType
}
