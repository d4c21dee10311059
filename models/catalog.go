package models

// Package is a bookable tier under a nested service option.
// Prices are integer minor currency units (cents).
type Package struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// ServiceOption is either a flat leaf (Price set, no Packages) or a
// parented option (Packages set, Price zero). A service never mixes the
// two shapes.
type ServiceOption struct {
	Name     string    `json:"name"`
	Price    int64     `json:"price,omitempty"`
	Packages []Package `json:"packages,omitempty"`
}

// Service is a static catalog entry. Capability flags are computed once
// at catalog definition so downstream code never branches on the id.
type Service struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Options []ServiceOption `json:"options,omitempty"`

	// Capabilities.
	Nested                bool   `json:"nested"`                // options carry packages
	SupportsAddOns        bool   `json:"supportsAddOns"`        // pontoon water add-ons
	SupportsCombinedOffer bool   `json:"supportsCombinedOffer"` // foam/bounce bundle
	ContactOnly           bool   `json:"contactOnly"`           // no bookable options (dj)
	ComplementID          string `json:"complementId,omitempty"`
}
