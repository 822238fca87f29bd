package service

import (
	"context"

	"github.com/ceyizapp/ceyiz/internal/api"
	"github.com/ceyizapp/ceyiz/internal/model"
)

// listLimit caps the per-category fetch. The view filters client-side, so it
// always pulls the full set for the category.
const listLimit = 1000

// CategoryItems adapts the dowry service to the view controller for one
// category: full-set reloads plus the individual mutations the controller
// pushes.
type CategoryItems struct {
	dowries    *Dowry
	categoryID string
}

// NewCategoryItems creates the adapter for a category.
func NewCategoryItems(dowries *Dowry, categoryID string) *CategoryItems {
	return &CategoryItems{dowries: dowries, categoryID: categoryID}
}

// Items fetches the full unfiltered set for the category.
func (c *CategoryItems) Items(ctx context.Context) ([]model.Item, error) {
	return c.dowries.List(ctx, api.DowryQuery{
		Category: c.categoryID,
		Page:     1,
		Limit:    listLimit,
	})
}

// SetStatus pushes a purchase-status change. Failures are announced by the
// dowry service.
func (c *CategoryItems) SetStatus(ctx context.Context, id, status string) error {
	return c.dowries.UpdateStatus(ctx, id, status)
}

// SetRead pushes a read-flag change silently.
func (c *CategoryItems) SetRead(ctx context.Context, id string, read bool) error {
	return c.dowries.Update(ctx, id, api.DowryUpdate{IsRead: &read}, UpdateOptions{Notify: false})
}

// Remove deletes an item. Outcome notifications come from the dowry service.
func (c *CategoryItems) Remove(ctx context.Context, id string) error {
	return c.dowries.Delete(ctx, id)
}
