package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// BookInfo is the OCR result for a book cover photo.
type BookInfo struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// UploadImage sends image data as a multipart request and returns the new
// image ID. Images are immutable; replacing an item's photo uploads a new
// image and re-points the item at it.
func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("creating form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("writing form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("closing multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/image/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var out struct {
		envelope
		Image struct {
			ID string `json:"_id"`
		} `json:"image"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return "", fmt.Errorf("%w: %s", ErrUnauthorized, envMessage(out.envelope))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !out.Success {
		return "", &Error{Status: resp.StatusCode, Message: out.Message}
	}
	if out.Image.ID == "" {
		return "", &Error{Status: resp.StatusCode, Message: "image id missing from response"}
	}
	return out.Image.ID, nil
}

// Image fetches raw image bytes and the MIME type reported by the server.
func (c *Client) Image(ctx context.Context, id string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/image/"+id, nil)
	if err != nil {
		return nil, "", fmt.Errorf("building request: %w", err)
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, "", fmt.Errorf("%w: authentication required", ErrUnauthorized)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", &Error{Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading image data: %w", err)
	}

	mime := resp.Header.Get("Content-Type")
	if mime == "" {
		mime = http.DetectContentType(data)
	}
	return data, mime, nil
}

// DeleteImage removes a stored image.
func (c *Client) DeleteImage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/image/"+id, nil, nil)
}

// OCR asks the server to extract book title and author from a stored image.
func (c *Client) OCR(ctx context.Context, imageID string) (*BookInfo, error) {
	var resp struct {
		BookInfo BookInfo `json:"bookInfo"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/image/ocr/"+imageID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.BookInfo, nil
}
