package view

import "context"

// FetchImage resolves an image ID to a base64 data URL.
type FetchImage func(ctx context.Context, id string) (string, error)

// ImageCache maps image IDs to data URLs for the lifetime of a view.
// Entries are populated lazily and never evicted: image IDs are stable
// (replacing an item's photo issues a new ID) and a view is short-lived.
type ImageCache struct {
	fetch FetchImage
	cache map[string]string
}

// NewImageCache creates a cache backed by the given fetch function.
func NewImageCache(fetch FetchImage) *ImageCache {
	return &ImageCache{fetch: fetch, cache: make(map[string]string)}
}

// Get returns the data URL for an image, fetching it on first reference.
// Failed fetches are not cached, so a later reference retries.
func (c *ImageCache) Get(ctx context.Context, id string) (string, error) {
	if url, ok := c.cache[id]; ok {
		return url, nil
	}
	url, err := c.fetch(ctx, id)
	if err != nil {
		return "", err
	}
	c.cache[id] = url
	return url, nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	return len(c.cache)
}
