package api

import (
	"context"
	"net/http"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ceyizapp/ceyiz/internal/model"
)

// Category data on the wire. Icon tags and display fields are normalized
// client-side before anything renders them.
type rawCategory struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// The server stores Turkish-language names; plain ASCII uppercasing would
// mangle dotted/dotless i, so use the Turkish caser.
var titleCaser = cases.Upper(language.Turkish)

// Categories fetches all categories and normalizes them for display:
// titles are locale-uppercased and unknown icon tags fall back to folder.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var resp struct {
		Categories []rawCategory `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/category/get", nil, &resp); err != nil {
		return nil, err
	}

	categories := make([]model.Category, 0, len(resp.Categories))
	for _, rc := range resp.Categories {
		categories = append(categories, model.Category{
			ID:          rc.ID,
			Name:        rc.Name,
			Title:       titleCaser.String(rc.Name),
			Icon:        model.ParseIcon(rc.Icon),
			Color:       model.CategoryColor,
			Description: rc.Description,
		})
	}
	return categories, nil
}

// AddCategory creates a category with the given name and icon tag.
func (c *Client) AddCategory(ctx context.Context, name string, icon model.Icon) (*model.Category, error) {
	var resp struct {
		Category rawCategory `json:"category"`
	}
	body := map[string]string{"name": name, "icon": string(icon)}
	if err := c.do(ctx, http.MethodPost, "/api/category/add", body, &resp); err != nil {
		return nil, err
	}
	return &model.Category{
		ID:          resp.Category.ID,
		Name:        resp.Category.Name,
		Title:       titleCaser.String(resp.Category.Name),
		Icon:        model.ParseIcon(resp.Category.Icon),
		Color:       model.CategoryColor,
		Description: resp.Category.Description,
	}, nil
}

// DeleteCategory removes a category. The server cascades the deletion to the
// category's items; the client does not verify that.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/category/delete/"+id, nil, nil)
}
