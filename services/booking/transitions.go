package booking

import (
	"context"
	"fmt"
	"time"

	"wavecrest/models"
	"wavecrest/services/calendar"
	"wavecrest/services/catalog"
)

// resetDownstream clears every selection that depends on the current
// service so nothing leaks across a service change.
func resetDownstream(draft *models.BookingDraft) {
	draft.SelectedOptionName = ""
	draft.SelectedPackageName = ""
	draft.SelectedOptionPrice = 0
	draft.AddOns = models.AddOnSelection{}
	draft.CombinedOffer = models.CombinedOfferSelection{}
	draft.Date = nil
}

// resetDraft returns the draft to the service-selection step with all
// fields cleared, keeping its session identity.
func resetDraft(draft *models.BookingDraft) {
	draft.Step = models.StepServiceSelect
	draft.ServiceID = ""
	draft.ServiceName = ""
	draft.PersonalInfo = models.PersonalInfo{}
	draft.BookingID = ""
	draft.PaymentComplete = false
	resetDownstream(draft)
}

// SelectService picks a service. Contact-only services branch to the
// terminal contact step; all others advance to details with every
// downstream selection reset.
func (s *DefaultFlowService) SelectService(ctx context.Context, sessionID, serviceID string) (*models.BookingDraft, models.TransitionResult, error) {
	return s.mutate(ctx, sessionID, func(draft *models.BookingDraft) models.TransitionResult {
		svc, ok := catalog.GetService(serviceID)
		if !ok {
			return models.Rejected("unknown service")
		}
		draft.ServiceID = svc.ID
		draft.ServiceName = svc.Name
		resetDownstream(draft)
		if svc.ContactOnly {
			draft.Step = models.StepContactOnly
		} else {
			draft.Step = models.StepDetails
		}
		return models.Applied()
	})
}

// SelectOption picks an option under the current service. Flat options
// carry their own price; nested options defer pricing to the package
// step. Any package or bundle chosen under the previous option is
// invalidated.
func (s *DefaultFlowService) SelectOption(ctx context.Context, sessionID, optionName string) (*models.BookingDraft, models.TransitionResult, error) {
	return s.mutate(ctx, sessionID, func(draft *models.BookingDraft) models.TransitionResult {
		svc, ok := catalog.GetService(draft.ServiceID)
		if !ok {
			return models.Rejected("no service selected")
		}
		opt, ok := catalog.GetOption(svc.ID, optionName)
		if !ok {
			return models.Rejected("unknown option")
		}
		draft.SelectedOptionName = opt.Name
		draft.SelectedPackageName = ""
		draft.CombinedOffer = models.CombinedOfferSelection{}
		if svc.Nested {
			draft.SelectedOptionPrice = 0
		} else {
			draft.SelectedOptionPrice = opt.Price
		}
		return models.Applied()
	})
}

// SelectPackage picks a package tier. Only valid on nested services once
// an option is chosen.
func (s *DefaultFlowService) SelectPackage(ctx context.Context, sessionID, packageName string) (*models.BookingDraft, models.TransitionResult, error) {
	return s.mutate(ctx, sessionID, func(draft *models.BookingDraft) models.TransitionResult {
		svc, ok := catalog.GetService(draft.ServiceID)
		if !ok || !svc.Nested {
			return models.Rejected("service does not use packages")
		}
		if draft.SelectedOptionName == "" {
			return models.Rejected("no option selected")
		}
		for _, pkg := range catalog.GetPackagesFor(svc.ID, draft.SelectedOptionName) {
			if pkg.Name == packageName {
				draft.SelectedPackageName = pkg.Name
				draft.SelectedOptionPrice = pkg.Price
				return models.Applied()
			}
		}
		return models.Rejected("unknown package")
	})
}

// SetAddOn sets one counted add-on quantity, clamped to [0, max]. The
// machine does not enforce applicability ordering; whether add-ons are
// shown at all is the catalog capability's concern.
func (s *DefaultFlowService) SetAddOn(ctx context.Context, sessionID, key string, value int) (*models.BookingDraft, models.TransitionResult, error) {
	return s.mutate(ctx, sessionID, func(draft *models.BookingDraft) models.TransitionResult {
		if value < 0 {
			value = 0
		}
		switch key {
		case "floatingMat":
			draft.AddOns.FloatingMat = min(value, models.MaxFloatingMats)
		case "tube":
			draft.AddOns.Tube = min(value, models.MaxTubes)
		case "inflatableToy":
			draft.AddOns.InflatableToy = min(value, models.MaxInflatableToys)
		default:
			return models.Rejected(fmt.Sprintf("unknown add-on %q", key))
		}
		return models.Applied()
	})
}

// SetPet toggles the flat-fee pet add-on.
func (s *DefaultFlowService) SetPet(ctx context.Context, sessionID string, pet bool) (*models.BookingDraft, models.TransitionResult, error) {
	return s.mutate(ctx, sessionID, func(draft *models.BookingDraft) models.TransitionResult {
		draft.AddOns.Pet = pet
		return models.Applied()
	})
}

// EnableCombinedOffer bundles the current foam/bounce selection with an
// option from the complementary service at the flat discount.
func (s *DefaultFlowService) EnableCombinedOffer(ctx context.Context, sessionID, complementaryOptionName string) (*models.BookingDraft, models.TransitionResult, error) {
	return s.mutate(ctx, sessionID, func(draft *models.BookingDraft) models.TransitionResult {
		svc, ok := catalog.GetService(draft.ServiceID)
		if !ok || !svc.SupportsCombinedOffer {
			return models.Rejected("combined offer not available for this service")
		}
		if draft.SelectedOptionName == "" {
			return models.Rejected("no option selected")
		}
		opt, ok := catalog.GetOption(svc.ComplementID, complementaryOptionName)
		if !ok {
			return models.Rejected("unknown complementary option")
		}
		draft.CombinedOffer = models.CombinedOfferSelection{
			Enabled:                 true,
			ComplementaryOptionName: opt.Name,
			ComplementaryPrice:      opt.Price,
		}
		return models.Applied()
	})
}

// DisableCombinedOffer resets the bundle selection to defaults.
func (s *DefaultFlowService) DisableCombinedOffer(ctx context.Context, sessionID string) (*models.BookingDraft, models.TransitionResult, error) {
	return s.mutate(ctx, sessionID, func(draft *models.BookingDraft) models.TransitionResult {
		draft.CombinedOffer = models.CombinedOfferSelection{}
		return models.Applied()
	})
}

// UpdatePersonalInfo sets one customer contact field. Free text; the
// only validation is non-empty at proceed time.
func (s *DefaultFlowService) UpdatePersonalInfo(ctx context.Context, sessionID, field, value string) (*models.BookingDraft, models.TransitionResult, error) {
	return s.mutate(ctx, sessionID, func(draft *models.BookingDraft) models.TransitionResult {
		switch field {
		case "firstName":
			draft.PersonalInfo.FirstName = value
		case "lastName":
			draft.PersonalInfo.LastName = value
		case "email":
			draft.PersonalInfo.Email = value
		case "phone":
			draft.PersonalInfo.Phone = value
		default:
			return models.Rejected(fmt.Sprintf("unknown field %q", field))
		}
		return models.Applied()
	})
}

// SelectDate sets the booking date. A date in the blocked set is
// rejected and the draft left unchanged; any other date overwrites the
// prior selection unconditionally.
func (s *DefaultFlowService) SelectDate(ctx context.Context, sessionID string, date time.Time) (*models.BookingDraft, models.TransitionResult, error) {
	blockedDates, err := s.BlockedRepo.ListDates(ctx)
	if err != nil {
		return nil, models.TransitionResult{}, fmt.Errorf("failed to load blocked dates: %w", err)
	}
	booked := calendar.ToSet(blockedDates)

	return s.mutate(ctx, sessionID, func(draft *models.BookingDraft) models.TransitionResult {
		if calendar.IsBooked(date, booked) {
			return models.Rejected("date unavailable")
		}
		d := date
		draft.Date = &d
		return models.Applied()
	})
}

// CanProceed reports whether the draft may advance from its current step.
func CanProceed(draft *models.BookingDraft) bool {
	switch draft.Step {
	case models.StepServiceSelect:
		return draft.ServiceID != ""
	case models.StepDetails:
		if draft.SelectedOptionName == "" || !draft.PersonalInfo.Complete() {
			return false
		}
		if svc, ok := catalog.GetService(draft.ServiceID); ok && svc.Nested {
			return draft.SelectedPackageName != ""
		}
		return true
	case models.StepDate:
		return draft.Date != nil
	default:
		// No forward transition from payment or contact-only.
		return false
	}
}

// Next advances one step when CanProceed holds. Calling it when the
// gate fails is a rejected no-op, any number of times.
func (s *DefaultFlowService) Next(ctx context.Context, sessionID string) (*models.BookingDraft, models.TransitionResult, error) {
	return s.mutate(ctx, sessionID, func(draft *models.BookingDraft) models.TransitionResult {
		if draft.Step == models.StepContactOnly {
			return models.Rejected("contact-only flow has no next step")
		}
		if !CanProceed(draft) {
			return models.Rejected("step requirements not met")
		}
		draft.Step++
		return models.Applied()
	})
}

// Back rewinds one step, floor at service selection. Landing back on
// step 1 resets the draft, matching the flow's re-entry semantics. The
// contact-only branch exits the same way.
func (s *DefaultFlowService) Back(ctx context.Context, sessionID string) (*models.BookingDraft, models.TransitionResult, error) {
	return s.mutate(ctx, sessionID, func(draft *models.BookingDraft) models.TransitionResult {
		switch draft.Step {
		case models.StepServiceSelect:
			return models.Rejected("already at first step")
		case models.StepContactOnly, models.StepDetails:
			resetDraft(draft)
		default:
			draft.Step--
		}
		return models.Applied()
	})
}

// CompletePayment records the confirmed booking id and marks the flow
// terminal.
func (s *DefaultFlowService) CompletePayment(ctx context.Context, sessionID, bookingID string) (*models.BookingDraft, models.TransitionResult, error) {
	return s.mutate(ctx, sessionID, func(draft *models.BookingDraft) models.TransitionResult {
		if draft.Step != models.StepPayment {
			return models.Rejected("payment step not reached")
		}
		draft.BookingID = bookingID
		draft.PaymentComplete = true
		return models.Applied()
	})
}
