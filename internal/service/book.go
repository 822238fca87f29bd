package service

import (
	"context"

	"github.com/ceyizapp/ceyiz/internal/api"
	"github.com/ceyizapp/ceyiz/internal/model"
	"github.com/ceyizapp/ceyiz/internal/notify"
)

// Book wraps the book endpoints.
type Book struct {
	state
	client *api.Client
}

// NewBook creates the book service.
func NewBook(client *api.Client, notifier notify.Notifier) *Book {
	return &Book{state: state{notifier: notifier}, client: client}
}

// Import submits freeform "Author – Title" lines for server-side parsing and
// announces a per-line summary: success when everything imported, a warning
// on partial failure, an error when the call itself failed.
func (b *Book) Import(ctx context.Context, text, categoryID string) (*api.ImportSummary, error) {
	b.begin()
	summary, err := b.client.ImportBooks(ctx, text, categoryID)
	if err := b.finish(err); err != nil {
		b.notifier.Error("failed to import books: %s", err)
		return nil, err
	}

	if summary.Failed > 0 {
		b.notifier.Warning("%d books added, %d failed", summary.Successful, summary.Failed)
	} else {
		b.notifier.Success("%d books added", summary.Successful)
	}
	return summary, nil
}

// List fetches books matching the query. Failures are recorded, not
// announced.
func (b *Book) List(ctx context.Context, q api.BookQuery) ([]model.Item, error) {
	b.begin()
	books, err := b.client.Books(ctx, q)
	if err := b.finish(err); err != nil {
		return nil, err
	}
	return books, nil
}

// Update applies a partial update, announcing the outcome unless the options
// say silent. The read-status toggle uses the silent path.
func (b *Book) Update(ctx context.Context, id string, u api.BookUpdate, opts UpdateOptions) error {
	b.begin()
	err := b.client.UpdateBook(ctx, id, u)
	if err := b.finish(err); err != nil {
		if opts.Notify {
			b.notifier.Error("failed to update book: %s", err)
		}
		return err
	}
	if opts.Notify {
		b.notifier.Success("book updated")
	}
	return nil
}

// UpdateStatus changes only the purchase status. Failure is announced,
// success is not; same contract as the dowry status toggle.
func (b *Book) UpdateStatus(ctx context.Context, id, status string) error {
	err := b.client.UpdateBookStatus(ctx, id, status)
	if err != nil {
		b.err = err.Error()
		b.notifier.Error("failed to update status: %s", err)
		return err
	}
	return nil
}

// Delete removes a book and announces the outcome.
func (b *Book) Delete(ctx context.Context, id string) error {
	b.begin()
	err := b.client.DeleteBook(ctx, id)
	if err := b.finish(err); err != nil {
		b.notifier.Error("failed to delete book: %s", err)
		return err
	}
	b.notifier.Success("book deleted")
	return nil
}
