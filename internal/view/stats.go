package view

// Stats summarizes the authoritative set, independent of any active filters.
type Stats struct {
	Total        int
	Purchased    int
	NotPurchased int

	TotalPrice        float64
	PurchasedPrice    float64
	NotPurchasedPrice float64

	// Among purchased items; meaningful only for book categories.
	Read   int
	Unread int
}

// Stats computes the category summary from the authoritative set.
func (c *Controller) Stats() Stats {
	var s Stats
	for _, item := range c.allItems {
		s.Total++
		s.TotalPrice += item.Price
		if item.Purchased() {
			s.Purchased++
			s.PurchasedPrice += item.Price
			if item.IsRead {
				s.Read++
			} else {
				s.Unread++
			}
		} else {
			s.NotPurchased++
			s.NotPurchasedPrice += item.Price
		}
	}
	return s
}
