package models

import "time"

// CartItem is one apparel line in a redis-backed cart session.
type CartItem struct {
	ItemID    string `json:"itemId"`
	ProductID string `json:"product_id"`
	VariantID int    `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// OrderLineItem is a print-on-demand line item as the upstream expects it.
type OrderLineItem struct {
	ProductID string `json:"product_id"`
	VariantID int    `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// OrderAddress is the upstream address_to payload.
type OrderAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Country   string `json:"country"`
	Region    string `json:"region,omitempty"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
}

// OrderSubmission is the body accepted by the apparel order endpoint.
type OrderSubmission struct {
	ExternalID     string          `json:"external_id"`
	Label          string          `json:"label,omitempty"`
	LineItems      []OrderLineItem `json:"line_items"`
	ShippingMethod int             `json:"shipping_method"`
	AddressTo      OrderAddress    `json:"address_to"`
}

// UpstreamOrder is the order object returned by the print-on-demand API.
type UpstreamOrder struct {
	ID         string          `json:"id"`
	ExternalID string          `json:"external_id"`
	Status     string          `json:"status"`
	LineItems  []OrderLineItem `json:"line_items"`
	AddressTo  OrderAddress    `json:"address_to"`
	TotalPrice int64           `json:"total_price"` // cents
	CreatedAt  string          `json:"created_at"`
}

// OrderRecord is the local audit row written for each submitted order.
type OrderRecord struct {
	ID              string    `bson:"id" json:"id"`
	UpstreamOrderID string    `bson:"upstream_order_id" json:"upstreamOrderId"`
	ExternalID      string    `bson:"external_id" json:"externalId"`
	Status          string    `bson:"status" json:"status"`
	LineCount       int       `bson:"line_count" json:"lineCount"`
	Email           string    `bson:"email" json:"email"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
}
