package models

import "time"

// FlowStep identifies a state of the booking flow.
type FlowStep int

const (
	StepServiceSelect FlowStep = 1
	StepDetails       FlowStep = 2
	StepDate          FlowStep = 3
	StepPayment       FlowStep = 4
	// StepContactOnly is the terminal contact-us branch for services with
	// no bookable options. The wire value 99 is kept for client
	// compatibility with the original flow.
	StepContactOnly FlowStep = 99
)

func (s FlowStep) String() string {
	switch s {
	case StepServiceSelect:
		return "service_select"
	case StepDetails:
		return "details"
	case StepDate:
		return "date_select"
	case StepPayment:
		return "payment"
	case StepContactOnly:
		return "contact_only"
	default:
		return "unknown"
	}
}

// Per-add-on unit prices and maxima, in cents.
const (
	FloatingMatPrice   int64 = 2500
	TubePrice          int64 = 1000
	InflatableToyPrice int64 = 1000
	PetFee             int64 = 2500

	MaxFloatingMats   = 1
	MaxTubes          = 2
	MaxInflatableToys = 4
)

// AddOnSelection holds pontoon add-on quantities.
type AddOnSelection struct {
	FloatingMat   int  `json:"floatingMat"`
	Tube          int  `json:"tube"`
	InflatableToy int  `json:"inflatableToy"`
	Pet           bool `json:"pet"`
}

// CombinedOfferDiscount is the flat bundle discount ($25) in cents.
const CombinedOfferDiscount int64 = 2500

// CombinedOfferSelection bundles a foam/bounce booking with its
// complementary service at a flat discount.
type CombinedOfferSelection struct {
	Enabled                 bool   `json:"enabled"`
	ComplementaryOptionName string `json:"complementaryOptionName,omitempty"`
	ComplementaryPrice      int64  `json:"complementaryPrice,omitempty"`
}

// PersonalInfo holds the customer's contact fields collected at step 2.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Complete reports whether all four fields are non-empty.
func (p PersonalInfo) Complete() bool {
	return p.FirstName != "" && p.LastName != "" && p.Email != "" && p.Phone != ""
}

// BookingDraft is the mutable aggregate for one booking flow session.
// It lives in Redis, keyed by SessionID, and is mutated exclusively by
// the flow service's transition operations.
type BookingDraft struct {
	SessionID           string                 `json:"sessionId"`
	Step                FlowStep               `json:"step"`
	ServiceID           string                 `json:"serviceId,omitempty"`
	ServiceName         string                 `json:"serviceName,omitempty"`
	SelectedOptionName  string                 `json:"selectedOptionName,omitempty"`
	SelectedPackageName string                 `json:"selectedPackageName,omitempty"`
	SelectedOptionPrice int64                  `json:"selectedOptionPrice"`
	AddOns              AddOnSelection         `json:"addOns"`
	CombinedOffer       CombinedOfferSelection `json:"combinedOffer"`
	Date                *time.Time             `json:"date,omitempty"`
	PersonalInfo        PersonalInfo           `json:"personalInfo"`
	BookingID           string                 `json:"bookingId,omitempty"`
	PaymentComplete     bool                   `json:"paymentComplete"`
	CreatedAt           time.Time              `json:"createdAt"`
}

// TransitionResult reports whether a flow transition was applied.
// Rejections carry a reason so callers (and tests) can assert on them
// instead of inferring from absence of change.
type TransitionResult struct {
	Applied bool   `json:"applied"`
	Reason  string `json:"reason,omitempty"`
}

func Applied() TransitionResult {
	return TransitionResult{Applied: true}
}

func Rejected(reason string) TransitionResult {
	return TransitionResult{Applied: false, Reason: reason}
}
