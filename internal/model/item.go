package model

// Item represents a tracked household good ("dowry" item). Items in a
// book-tagged category additionally carry Author and IsRead.
type Item struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Author      string  `json:"author,omitempty"`
	Category    string  `json:"Category"`
	Price       float64 `json:"dowryPrice"`
	Location    string  `json:"dowryLocation,omitempty"`
	ImageID     string  `json:"imageId,omitempty"`
	Status      string  `json:"status"`
	IsRead      bool    `json:"isRead,omitempty"`
}

// Item statuses.
const (
	StatusPurchased    = "purchased"
	StatusNotPurchased = "not_purchased"
)

// Purchased reports whether the item has been bought.
func (i Item) Purchased() bool {
	return i.Status == StatusPurchased
}

// ValidStatus checks that a status string is one of the known values.
func ValidStatus(status string) bool {
	return status == StatusPurchased || status == StatusNotPurchased
}
