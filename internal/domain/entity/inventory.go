package entity

// InventoryItem is a tracked kitchen stock line. Identity is the item
// name. Stock never exceeds Max; restocking sets Stock back to Max.
type InventoryItem struct {
	Name      string `json:"name"`      // Stock line name, unique.
	Stock     int    `json:"stock"`     // Current stock level, >= 0 and <= Max.
	Unit      string `json:"unit"`      // Unit label, e.g. "kg", "pcs".
	Max       int    `json:"max"`       // Maximum capacity.
	Threshold int    `json:"threshold"` // Low-stock warning threshold.
}

// IsLowStock reports whether the line is at or below its threshold.
// Purely informational; crossing the threshold triggers nothing by itself.
func (i *InventoryItem) IsLowStock() bool {
	return i.Stock <= i.Threshold
}
