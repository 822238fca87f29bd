package service

import (
	"context"

	"github.com/ceyizapp/ceyiz/internal/api"
	"github.com/ceyizapp/ceyiz/internal/imaging"
	"github.com/ceyizapp/ceyiz/internal/model"
	"github.com/ceyizapp/ceyiz/internal/notify"
)

// Dowry wraps the dowry and image endpoints.
type Dowry struct {
	state
	client *api.Client
}

// NewDowry creates the dowry service.
func NewDowry(client *api.Client, notifier notify.Notifier) *Dowry {
	return &Dowry{state: state{notifier: notifier}, client: client}
}

// List fetches items matching the query. Failures are recorded, not
// announced.
func (d *Dowry) List(ctx context.Context, q api.DowryQuery) ([]model.Item, error) {
	d.begin()
	items, err := d.client.Dowries(ctx, q)
	if err := d.finish(err); err != nil {
		return nil, err
	}
	return items, nil
}

// ListByCategory fetches all items in one category.
func (d *Dowry) ListByCategory(ctx context.Context, categoryID string) ([]model.Item, error) {
	d.begin()
	items, err := d.client.DowriesByCategory(ctx, categoryID)
	if err := d.finish(err); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a single item.
func (d *Dowry) Get(ctx context.Context, id string) (*model.Item, error) {
	d.begin()
	item, err := d.client.Dowry(ctx, id)
	if err := d.finish(err); err != nil {
		return nil, err
	}
	return item, nil
}

// Create adds an item and announces the outcome.
func (d *Dowry) Create(ctx context.Context, n api.NewDowry) (*model.Item, error) {
	d.begin()
	item, err := d.client.CreateDowry(ctx, n)
	if err := d.finish(err); err != nil {
		d.notifier.Error("failed to add item: %s", err)
		return nil, err
	}
	d.notifier.Success("item added")
	return item, nil
}

// Update applies a partial update, announcing the outcome unless the options
// say silent.
func (d *Dowry) Update(ctx context.Context, id string, u api.DowryUpdate, opts UpdateOptions) error {
	d.begin()
	err := d.client.UpdateDowry(ctx, id, u)
	if err := d.finish(err); err != nil {
		if opts.Notify {
			d.notifier.Error("failed to update item: %s", err)
		}
		return err
	}
	if opts.Notify {
		d.notifier.Success("item updated")
	}
	return nil
}

// UpdateStatus changes only the purchase status. A failure is announced so
// the user learns the optimistic toggle was rolled back; success stays quiet
// because the switch already shows it.
func (d *Dowry) UpdateStatus(ctx context.Context, id, status string) error {
	err := d.client.UpdateDowry(ctx, id, api.DowryUpdate{Status: &status})
	if err != nil {
		d.err = err.Error()
		d.notifier.Error("failed to update status: %s", err)
		return err
	}
	return nil
}

// Delete removes an item and announces the outcome.
func (d *Dowry) Delete(ctx context.Context, id string) error {
	d.begin()
	err := d.client.DeleteDowry(ctx, id)
	if err := d.finish(err); err != nil {
		d.notifier.Error("failed to delete item: %s", err)
		return err
	}
	d.notifier.Success("item deleted")
	return nil
}

// UploadImage validates and uploads image data, returning the new image ID.
func (d *Dowry) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	if err := imaging.ValidateUpload(data); err != nil {
		d.err = err.Error()
		d.notifier.Error("%s", err)
		return "", err
	}

	d.begin()
	id, err := d.client.UploadImage(ctx, filename, data)
	if err := d.finish(err); err != nil {
		d.notifier.Error("failed to upload image: %s", err)
		return "", err
	}
	return id, nil
}

// Image fetches an image and returns it as a base64 data URL. Failures are
// silent; the caller shows a placeholder instead.
func (d *Dowry) Image(ctx context.Context, id string) (string, error) {
	data, mime, err := d.client.Image(ctx, id)
	if err != nil {
		return "", err
	}
	return imaging.DataURL(mime, data), nil
}

// DeleteImage removes a stored image, best effort. Replacing an item's photo
// uploads a new image first, so a leaked old image is harmless.
func (d *Dowry) DeleteImage(ctx context.Context, id string) bool {
	return d.client.DeleteImage(ctx, id) == nil
}

// OCR extracts book title and author from a stored cover photo. Silent: the
// result only prefills a form, so a failure just means an empty prefill.
func (d *Dowry) OCR(ctx context.Context, imageID string) *api.BookInfo {
	info, err := d.client.OCR(ctx, imageID)
	if err != nil {
		return nil
	}
	return info
}
