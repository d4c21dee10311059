package booking

import (
	"context"
	"fmt"
	"strings"

	"wavecrest/models"
	"wavecrest/services/calendar"
	"wavecrest/services/pricing"
)

// Summary derives the read-only booking projection from the stored
// draft. It is recomputed from scratch on every call; nothing is cached,
// so two calls with no intervening mutation are deep-equal.
func (s *DefaultFlowService) Summary(ctx context.Context, sessionID string) (*models.BookingSummary, error) {
	draft, err := s.loadDraft(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return BuildSummary(draft), nil
}

// BuildSummary assembles the summary for a draft.
func BuildSummary(draft *models.BookingDraft) *models.BookingSummary {
	addOnsTotal := pricing.AddOnsSubtotal(draft.AddOns)

	summary := &models.BookingSummary{
		ServiceID:    draft.ServiceID,
		ServiceName:  draft.ServiceName,
		OptionName:   draft.SelectedOptionName,
		PackageName:  draft.SelectedPackageName,
		BasePrice:    draft.SelectedOptionPrice,
		AddOnLines:   pricing.AddOnLines(draft.AddOns),
		AddOnsTotal:  addOnsTotal,
		TotalPrice:   pricing.GrandTotal(draft.SelectedOptionPrice, addOnsTotal, draft.CombinedOffer),
		PersonalInfo: draft.PersonalInfo,
	}

	if draft.CombinedOffer.Enabled {
		summary.OfferName = draft.CombinedOffer.ComplementaryOptionName
		summary.OfferPrice = draft.CombinedOffer.ComplementaryPrice
		summary.OfferDiscount = models.CombinedOfferDiscount
	}

	if draft.Date != nil {
		summary.Date = draft.Date.Format(calendar.DateKey)
		summary.DateDisplay = draft.Date.Format("Monday, January 2, 2006")
	}

	if draft.PersonalInfo.FirstName != "" || draft.PersonalInfo.LastName != "" {
		summary.CustomerName = strings.TrimSpace(draft.PersonalInfo.FirstName + " " + draft.PersonalInfo.LastName)
	}
	if draft.PersonalInfo.Email != "" || draft.PersonalInfo.Phone != "" {
		summary.Contact = fmt.Sprintf("%s · %s", draft.PersonalInfo.Email, draft.PersonalInfo.Phone)
	}

	return summary
}
