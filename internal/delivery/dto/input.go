package dto

// RowUpdateInput is a conditional single-row edit. Original is the full
// field snapshot the editor last observed (the fingerprint); the update
// only applies while the stored row still matches it.
type RowUpdateInput struct {
	OrderID  string            `json:"order_id" validate:"required"`
	SKU      string            `json:"sku"`
	Original map[string]string `json:"original" validate:"required"`
	Updates  map[string]string `json:"updates" validate:"required,min=1"`
}

// SkipInput appends one skip-exception date to a delivery row.
type SkipInput struct {
	OrderID string `json:"order_id" validate:"required"`
	SKU     string `json:"sku"`
	Date    string `json:"date" validate:"required"`
}
