package domain

// StockLevel is the available quantity of one item in the warehouse.
type StockLevel struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}
