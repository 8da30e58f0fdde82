package types

// ------------------------------
// Response Types
// ------------------------------

// ProductPage is a single page of products. The client never follows further
// pages.
type ProductPage struct {
	CurrentPage Scalar    `json:"current_page"`
	Data        []Product `json:"data"`
}

// CreateOrderResponse carries the id assigned to a new order
type CreateOrderResponse struct {
	ID Scalar `json:"id"`
}

// OrderToProduction echoes what the remote stored for an order sent to
// production. Its records are left open since their shape is not enforced.
type OrderToProduction struct {
	LineItems []Object `json:"line_items"`
	AddressTo Object   `json:"address_to"`
}
