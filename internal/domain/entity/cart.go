package entity

// CartEntry is a menu item selected into a cart together with its
// quantity. Entries are unique per item ID within a cart; adding an
// existing item increments the quantity instead of inserting a duplicate.
type CartEntry struct {
	Item     MenuItem `json:"item"`     // Snapshot of the selected menu item.
	Quantity int      `json:"quantity"` // Selected quantity, always >= 1.
}

// Cart is the mutable ledger of selected items for one session.
type Cart struct {
	Key     string       `json:"key"`     // Session key owning this cart.
	Entries []*CartEntry `json:"entries"` // Ordered entries, insertion order preserved.
}

// Find returns the entry for the given item ID, or nil when absent.
func (c *Cart) Find(itemID string) *CartEntry {
	for _, entry := range c.Entries {
		if entry.Item.ID == itemID {
			return entry
		}
	}

	return nil
}

// ItemCount returns the total quantity across all entries.
func (c *Cart) ItemCount() int {
	count := 0
	for _, entry := range c.Entries {
		count += entry.Quantity
	}

	return count
}

// IsEmpty reports whether the cart holds no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.Entries) == 0
}
