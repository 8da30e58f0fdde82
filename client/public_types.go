package client

import "github.com/kastproductions/printify-client/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
// Requests
type (
	WebhookRegistration     = types.WebhookRegistration
	CreateOrderRequest      = types.CreateOrderRequest
	LineItem                = types.LineItem
	Address                 = types.Address
	PublishSucceededRequest = types.PublishSucceededRequest

	// Domain entities
	Shop           = types.Shop
	Product        = types.Product
	ProductOption  = types.ProductOption
	ProductVariant = types.ProductVariant
	ProductImage   = types.ProductImage
	Scalar         = types.Scalar
	Topic          = types.Topic

	// Responses
	ProductPage         = types.ProductPage
	CreateOrderResponse = types.CreateOrderResponse
	OrderToProduction   = types.OrderToProduction

	// Open records
	Object = types.Object
	Value  = types.Value
	Kind   = types.Kind
)

// Webhook topics
const (
	TopicOrderCreated           = types.TopicOrderCreated
	TopicOrderSentToProduction  = types.TopicOrderSentToProduction
	TopicOrderShipmentCreated   = types.TopicOrderShipmentCreated
	TopicOrderShipmentDelivered = types.TopicOrderShipmentDelivered
)

// Topics returns every webhook topic.
func Topics() []Topic { return types.Topics() }

// ParseTopic converts user input into a Topic, rejecting unknown names.
func ParseTopic(s string) (Topic, error) { return types.ParseTopic(s) }

// ParseTopics splits a comma separated topic list.
func ParseTopics(csv string) ([]Topic, error) { return types.ParseTopics(csv) }

// Errors re-exported in errors.go
