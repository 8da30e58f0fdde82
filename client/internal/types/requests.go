package types

// ------------------------------
// Request Types
// ------------------------------

// WebhookRegistration is the payload for registering one webhook
type WebhookRegistration struct {
	Topic  Topic  `json:"topic"`
	URL    string `json:"url"`
	Secret string `json:"secret"`
}

// LineItem references a single product variant in an order
type LineItem struct {
	ProductID string `json:"product_id"`
	VariantID int64  `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// Address is the shipping destination of an order. Region is free text and
// is usually left empty.
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Country   string `json:"country"`
	Region    string `json:"region"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
}

// CreateOrderRequest holds parameters for a new order. An order carries
// exactly one line item.
type CreateOrderRequest struct {
	ExternalID               string      `json:"external_id"`
	LineItems                [1]LineItem `json:"line_items"`
	ShippingMethod           int         `json:"shipping_method"`
	SendShippingNotification bool        `json:"send_shipping_notification"`
	AddressTo                Address     `json:"address_to"`
}

// PublishSucceededRequest identifies the product whose external publication
// succeeded. Handle is the storefront URL of the listing. An empty Handle is
// treated as missing, so it is never sent as ""; a placeholder URL derived
// from ProductID is reported instead.
type PublishSucceededRequest struct {
	ProductID string
	Handle    string
}

// PublishRequest selects which product fields the storefront publishes.
type PublishRequest struct {
	Title       bool `json:"title"`
	Description bool `json:"description"`
	Images      bool `json:"images"`
	Variants    bool `json:"variants"`
	Tags        bool `json:"tags"`
}

// PublishAll marks every publishable field.
func PublishAll() PublishRequest {
	return PublishRequest{Title: true, Description: true, Images: true, Variants: true, Tags: true}
}

// PublishFailedRequest is the body of a publishing_failed call
type PublishFailedRequest struct {
	Reason string `json:"reason"`
}

// ExternalListing references the storefront listing of a published product
type ExternalListing struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
}

// PublishSucceededBody is the body of a publishing_succeeded call
type PublishSucceededBody struct {
	External ExternalListing `json:"external"`
}
