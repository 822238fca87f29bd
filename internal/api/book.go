package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ceyizapp/ceyiz/internal/model"
)

// BookQuery filters the book listing.
type BookQuery struct {
	Category string
	Search   string
	Page     int
	Limit    int
	Status   string
	IsRead   *bool
}

func (q BookQuery) encode() string {
	values := url.Values{}
	if q.Category != "" {
		values.Set("Category", q.Category)
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Status != "" {
		values.Set("status", q.Status)
	}
	if q.IsRead != nil {
		values.Set("isRead", strconv.FormatBool(*q.IsRead))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// BookUpdate is a partial book update.
type BookUpdate struct {
	Name     *string `json:"name,omitempty"`
	Author   *string `json:"author,omitempty"`
	Category *string `json:"Category,omitempty"`
	Status   *string `json:"status,omitempty"`
	IsRead   *bool   `json:"isRead,omitempty"`
}

// ImportSummary reports a bulk text import: how many input lines produced a
// book and how many the server could not parse or store.
type ImportSummary struct {
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// ImportBooks submits freeform multi-line text (one "Author – Title" pair per
// line) for server-side parsing into books of the given category.
func (c *Client) ImportBooks(ctx context.Context, text, categoryID string) (*ImportSummary, error) {
	var resp struct {
		Data struct {
			Summary ImportSummary `json:"summary"`
		} `json:"data"`
	}
	body := map[string]string{"text": text, "categoryId": categoryID}
	if err := c.do(ctx, http.MethodPost, "/api/book/create", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Data.Summary, nil
}

// Books lists books matching the query.
func (c *Client) Books(ctx context.Context, q BookQuery) ([]model.Item, error) {
	var resp struct {
		Books []model.Item `json:"books"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/book/get"+q.encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Books, nil
}

// UpdateBook applies a partial update to a book.
func (c *Client) UpdateBook(ctx context.Context, id string, u BookUpdate) error {
	return c.do(ctx, http.MethodPut, "/api/book/update/"+id, u, nil)
}

// UpdateBookStatus changes only the purchase status of a book.
func (c *Client) UpdateBookStatus(ctx context.Context, id, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPatch, "/api/book/update-status/"+id, body, nil)
}

// DeleteBook removes a book.
func (c *Client) DeleteBook(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/book/delete/"+id, nil, nil)
}
