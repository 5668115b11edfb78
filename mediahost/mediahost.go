// Package mediahost talks to the third-party image host that serves all
// product photos. The host returns a public URL plus an opaque handle used
// later to delete the asset.
package mediahost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
)

// maxImageWidth caps what we push upstream; the storefront never renders
// anything wider.
const maxImageWidth = 1600

// UploadResult identifies a stored asset.
type UploadResult struct {
	URL    string `json:"secure_url"`
	Handle string `json:"public_id"`
}

// Client is an HTTP client for the media host.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Upload pushes image bytes to the host and returns its public URL and
// deletion handle. Oversized images are downscaled before leaving the
// server.
func (c *Client) Upload(ctx context.Context, data []byte, mimeType string) (UploadResult, error) {
	data = normalize(data, mimeType)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", "upload")
	if err != nil {
		return UploadResult{}, err
	}
	if _, err := part.Write(data); err != nil {
		return UploadResult{}, err
	}
	if err := writer.Close(); err != nil {
		return UploadResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return UploadResult{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return UploadResult{}, fmt.Errorf("media host upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return UploadResult{}, fmt.Errorf("media host upload: status %d: %s", resp.StatusCode, msg)
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return UploadResult{}, fmt.Errorf("media host upload: decode response: %w", err)
	}
	if result.URL == "" || result.Handle == "" {
		return UploadResult{}, fmt.Errorf("media host upload: incomplete response")
	}
	return result, nil
}

// Delete asks the host to remove an asset by handle.
func (c *Client) Delete(ctx context.Context, handle string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/images/"+handle, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("media host delete: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("media host delete: status %d", resp.StatusCode)
	}
	return nil
}

// normalize downscales decodable images wider than maxImageWidth. Anything
// we cannot decode is passed through untouched and left to the host to
// reject.
func normalize(data []byte, mimeType string) []byte {
	if mimeType != "image/jpeg" && mimeType != "image/png" {
		return data
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}
	if img.Bounds().Dx() <= maxImageWidth {
		return data
	}

	resized := imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	var out bytes.Buffer
	format := imaging.JPEG
	if mimeType == "image/png" {
		format = imaging.PNG
	}
	if err := imaging.Encode(&out, resized, format); err != nil {
		return data
	}
	return out.Bytes()
}
