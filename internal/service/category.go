package service

import (
	"context"

	"github.com/ceyizapp/ceyiz/internal/api"
	"github.com/ceyizapp/ceyiz/internal/model"
	"github.com/ceyizapp/ceyiz/internal/notify"
)

// Category wraps the category endpoints.
type Category struct {
	state
	client *api.Client
}

// NewCategory creates the category service.
func NewCategory(client *api.Client, notifier notify.Notifier) *Category {
	return &Category{state: state{notifier: notifier}, client: client}
}

// Fetch lists all categories, normalized for display. Failures are recorded
// but not announced; the caller decides how to present an empty screen.
func (c *Category) Fetch(ctx context.Context) ([]model.Category, error) {
	c.begin()
	categories, err := c.client.Categories(ctx)
	if err := c.finish(err); err != nil {
		return nil, err
	}
	return categories, nil
}

// Create adds a category and announces the outcome.
func (c *Category) Create(ctx context.Context, name string, icon model.Icon) (*model.Category, error) {
	c.begin()
	category, err := c.client.AddCategory(ctx, name, icon)
	if err := c.finish(err); err != nil {
		c.notifier.Error("failed to add category: %s", err)
		return nil, err
	}
	c.notifier.Success("category added")
	return category, nil
}

// Delete removes a category and announces the outcome. The server cascades
// the deletion to the category's items.
func (c *Category) Delete(ctx context.Context, id string) error {
	c.begin()
	err := c.client.DeleteCategory(ctx, id)
	if err := c.finish(err); err != nil {
		c.notifier.Error("failed to delete category: %s", err)
		return err
	}
	c.notifier.Success("category deleted")
	return nil
}
