package models

// AddOnLine is one priced add-on entry in a booking summary.
type AddOnLine struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Amount   int64  `json:"amount"` // cents
}

// BookingSummary is a read-only projection of a draft, recomputed on
// every read and never cached.
type BookingSummary struct {
	ServiceID     string       `json:"serviceId"`
	ServiceName   string       `json:"serviceName"`
	OptionName    string       `json:"optionName"`
	PackageName   string       `json:"packageName,omitempty"`
	BasePrice     int64        `json:"basePrice"`
	AddOnLines    []AddOnLine  `json:"addOnLines,omitempty"`
	AddOnsTotal   int64        `json:"addOnsTotal"`
	OfferName     string       `json:"offerName,omitempty"`
	OfferPrice    int64        `json:"offerPrice,omitempty"`
	OfferDiscount int64        `json:"offerDiscount,omitempty"`
	TotalPrice    int64        `json:"totalPrice"`
	Date          string       `json:"date,omitempty"`          // "YYYY-MM-DD"
	DateDisplay   string       `json:"dateDisplay,omitempty"`   // "Monday, January 2, 2006"
	CustomerName  string       `json:"customerName,omitempty"`  // "First Last"
	Contact       string       `json:"contact,omitempty"`       // "email · phone"
	PersonalInfo  PersonalInfo `json:"personalInfo"`
}
