// Package view maintains the per-category item list: the authoritative set
// fetched from the server, a derived display set under user-controlled
// filters, and optimistic mutations that roll back when the server rejects
// them.
package view

import (
	"context"
	"sort"
	"strings"

	"github.com/ceyizapp/ceyiz/internal/model"
)

// StatusFilter narrows the display set by purchase status.
type StatusFilter string

const (
	StatusAll          StatusFilter = "all"
	StatusPurchased    StatusFilter = model.StatusPurchased
	StatusNotPurchased StatusFilter = model.StatusNotPurchased
)

// ReadFilter narrows the display set by read status. It only applies to
// book categories.
type ReadFilter string

const (
	ReadAll    ReadFilter = "all"
	ReadRead   ReadFilter = "read"
	ReadUnread ReadFilter = "unread"
)

// SortOrder orders the display set by price.
type SortOrder string

const (
	SortNone SortOrder = "none"
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Remote is the slice of the data layer the controller drives: reloading the
// full item set and pushing individual mutations.
type Remote interface {
	Items(ctx context.Context) ([]model.Item, error)
	SetStatus(ctx context.Context, id, status string) error
	SetRead(ctx context.Context, id string, read bool) error
	Remove(ctx context.Context, id string) error
}

// Controller holds one category's item list. allItems is the authoritative
// set in server order; items is always a filtered/sorted projection of it.
// Like the rest of the client it follows the single-threaded event model and
// is not safe for concurrent use.
type Controller struct {
	remote Remote
	book   bool

	allItems []model.Item
	items    []model.Item

	searchText   string
	statusFilter StatusFilter
	readFilter   ReadFilter
	sortOrder    SortOrder

	deleting bool
}

// NewController creates a controller. book activates the read filter and
// read toggling; for other categories both are inert.
func NewController(remote Remote, book bool) *Controller {
	return &Controller{
		remote:       remote,
		book:         book,
		statusFilter: StatusAll,
		readFilter:   ReadAll,
		sortOrder:    SortNone,
	}
}

// Reload refetches the full unfiltered set, replacing the authoritative list.
// The display set is re-derived under the current filters.
func (c *Controller) Reload(ctx context.Context) error {
	items, err := c.remote.Items(ctx)
	if err != nil {
		return err
	}
	c.allItems = items
	c.derive()
	return nil
}

// Items returns the current display set.
func (c *Controller) Items() []model.Item {
	return c.items
}

// AllItems returns the authoritative set in server order.
func (c *Controller) AllItems() []model.Item {
	return c.allItems
}

// SetSearch updates the search text and re-derives the display set.
func (c *Controller) SetSearch(text string) {
	c.searchText = text
	c.derive()
}

// SetStatusFilter updates the purchase-status filter.
func (c *Controller) SetStatusFilter(f StatusFilter) {
	c.statusFilter = f
	c.derive()
}

// SetReadFilter updates the read filter. It has no effect on the display set
// unless the category is book-typed.
func (c *Controller) SetReadFilter(f ReadFilter) {
	c.readFilter = f
	c.derive()
}

// SetSort sets the price sort order.
func (c *Controller) SetSort(order SortOrder) {
	c.sortOrder = order
	c.derive()
}

// CycleSort advances the sort order: none → asc → desc → none.
func (c *Controller) CycleSort() SortOrder {
	switch c.sortOrder {
	case SortNone:
		c.sortOrder = SortAsc
	case SortAsc:
		c.sortOrder = SortDesc
	default:
		c.sortOrder = SortNone
	}
	c.derive()
	return c.sortOrder
}

// Sort returns the current sort order.
func (c *Controller) Sort() SortOrder {
	return c.sortOrder
}

// ClearFilters resets search, status, and read filters.
func (c *Controller) ClearFilters() {
	c.searchText = ""
	c.statusFilter = StatusAll
	c.readFilter = ReadAll
	c.derive()
}

// derive recomputes the display set from the authoritative set and the
// current filters. Pure projection: no element appears in items that is
// absent from allItems.
func (c *Controller) derive() {
	filtered := make([]model.Item, 0, len(c.allItems))

	search := strings.ToLower(strings.TrimSpace(c.searchText))
	for _, item := range c.allItems {
		if search != "" && !matchesSearch(item, search) {
			continue
		}
		if c.statusFilter != StatusAll && item.Status != string(c.statusFilter) {
			continue
		}
		if c.book && c.readFilter != ReadAll {
			if c.readFilter == ReadRead && !item.IsRead {
				continue
			}
			if c.readFilter == ReadUnread && item.IsRead {
				continue
			}
		}
		filtered = append(filtered, item)
	}

	switch c.sortOrder {
	case SortAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	}

	c.items = filtered
}

func matchesSearch(item model.Item, search string) bool {
	return strings.Contains(strings.ToLower(item.Name), search) ||
		strings.Contains(strings.ToLower(item.Description), search) ||
		strings.Contains(strings.ToLower(item.Location), search)
}

// apply mutates the item with the given ID in both the authoritative and
// display sets, keeping them consistent.
func (c *Controller) apply(id string, mutate func(*model.Item)) {
	for i := range c.allItems {
		if c.allItems[i].ID == id {
			mutate(&c.allItems[i])
		}
	}
	for i := range c.items {
		if c.items[i].ID == id {
			mutate(&c.items[i])
		}
	}
}

// optimistic applies a mutation locally, pushes it to the server, and
// applies the inverse when the push fails. No retry; after a failed push the
// state matches the last confirmed server value.
func (c *Controller) optimistic(ctx context.Context, id string, mutate, inverse func(*model.Item), push func(context.Context) error) error {
	c.apply(id, mutate)
	if err := push(ctx); err != nil {
		c.apply(id, inverse)
		return err
	}
	return nil
}

// find returns the authoritative copy of an item, or nil.
func (c *Controller) find(id string) *model.Item {
	for i := range c.allItems {
		if c.allItems[i].ID == id {
			return &c.allItems[i]
		}
	}
	return nil
}

// ToggleStatus optimistically sets an item's purchase status and rolls it
// back if the remote update fails. The failure notification comes from the
// data layer.
func (c *Controller) ToggleStatus(ctx context.Context, id string, purchased bool) error {
	item := c.find(id)
	if item == nil {
		return nil
	}

	oldStatus := item.Status
	newStatus := model.StatusNotPurchased
	if purchased {
		newStatus = model.StatusPurchased
	}

	return c.optimistic(ctx, id,
		func(i *model.Item) { i.Status = newStatus },
		func(i *model.Item) { i.Status = oldStatus },
		func(ctx context.Context) error { return c.remote.SetStatus(ctx, id, newStatus) },
	)
}

// ToggleRead optimistically sets a book's read flag. The remote update is
// silent: a failure reverts local state without any notification, so a
// frequently flipped switch does not spam the user.
func (c *Controller) ToggleRead(ctx context.Context, id string, read bool) {
	if !c.book {
		return
	}
	item := c.find(id)
	if item == nil {
		return
	}

	oldRead := item.IsRead
	_ = c.optimistic(ctx, id,
		func(i *model.Item) { i.IsRead = read },
		func(i *model.Item) { i.IsRead = oldRead },
		func(ctx context.Context) error { return c.remote.SetRead(ctx, id, read) },
	)
}

// Delete removes an item remotely and then from both sets. Not optimistic:
// state is untouched until the server confirms. A second call while one is
// in flight is a no-op, guarding against duplicate submissions.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if c.deleting {
		return nil
	}
	c.deleting = true
	defer func() { c.deleting = false }()

	if err := c.remote.Remove(ctx, id); err != nil {
		return err
	}

	c.allItems = removeByID(c.allItems, id)
	c.items = removeByID(c.items, id)
	return nil
}

func removeByID(items []model.Item, id string) []model.Item {
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return kept
}
