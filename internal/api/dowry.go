package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ceyizapp/ceyiz/internal/model"
)

// DowryQuery filters the dowry listing. Zero values mean "no filter".
type DowryQuery struct {
	Category string
	Search   string
	Page     int
	Limit    int
	Status   string
}

func (q DowryQuery) encode() string {
	values := url.Values{}
	if q.Category != "" {
		// The API expects the capitalized parameter name.
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
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// NewDowry is the payload for creating an item.
type NewDowry struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"Category"`
	Price       float64 `json:"dowryPrice"`
	Location    string  `json:"dowryLocation,omitempty"`
	ImageID     string  `json:"imageId,omitempty"`
	Status      string  `json:"status"`
}

// DowryUpdate is a partial update; nil fields are left untouched server-side.
type DowryUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"dowryPrice,omitempty"`
	Location    *string  `json:"dowryLocation,omitempty"`
	ImageID     *string  `json:"imageId,omitempty"`
	Status      *string  `json:"status,omitempty"`
	IsRead      *bool    `json:"isRead,omitempty"`
}

// Dowries lists items matching the query.
func (c *Client) Dowries(ctx context.Context, q DowryQuery) ([]model.Item, error) {
	var resp struct {
		Dowries []model.Item `json:"dowries"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/dowry/get"+q.encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Dowries, nil
}

// Dowry fetches a single item by ID.
func (c *Client) Dowry(ctx context.Context, id string) (*model.Item, error) {
	var resp struct {
		Dowry model.Item `json:"dowry"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/dowry/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Dowry, nil
}

// DowriesByCategory lists all items in one category.
func (c *Client) DowriesByCategory(ctx context.Context, categoryID string) ([]model.Item, error) {
	var resp struct {
		Dowries []model.Item `json:"dowries"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/dowry/category/"+categoryID, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Dowries, nil
}

// CreateDowry adds a new item.
func (c *Client) CreateDowry(ctx context.Context, d NewDowry) (*model.Item, error) {
	var resp struct {
		Dowry model.Item `json:"dowry"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/dowry/create", d, &resp); err != nil {
		return nil, err
	}
	return &resp.Dowry, nil
}

// UpdateDowry applies a partial update to an item.
func (c *Client) UpdateDowry(ctx context.Context, id string, u DowryUpdate) error {
	return c.do(ctx, http.MethodPut, "/api/dowry/update/"+id, u, nil)
}

// DeleteDowry removes an item.
func (c *Client) DeleteDowry(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/dowry/delete/"+id, nil, nil)
}
