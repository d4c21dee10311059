package orders

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	orderRepo "wavecrest/database/repository/order"
	"wavecrest/models"
)

// OrderService submits apparel orders upstream and audits them locally.
type OrderService interface {
	Submit(ctx context.Context, sub models.OrderSubmission) (*models.UpstreamOrder, error)
	Get(ctx context.Context, orderID string) (*models.UpstreamOrder, error)
}

// DefaultOrderService implements OrderService.
type DefaultOrderService struct {
	Client *Client
	Repo   orderRepo.OrderRepository
	Logger *zap.Logger
}

// NewOrderService constructs a DefaultOrderService.
func NewOrderService(client *Client, repo orderRepo.OrderRepository, logger *zap.Logger) *DefaultOrderService {
	return &DefaultOrderService{
		Client: client,
		Repo:   repo,
		Logger: logger,
	}
}

// ValidateSubmission prechecks an order before it goes upstream.
func ValidateSubmission(sub models.OrderSubmission) error {
	if len(sub.LineItems) == 0 {
		return &APIError{Kind: KindValidation, Message: "order has no line items"}
	}
	for _, item := range sub.LineItems {
		if item.ProductID == "" || item.VariantID == 0 || item.Quantity <= 0 {
			return &APIError{Kind: KindValidation, Message: "line item missing product, variant or quantity"}
		}
	}
	addr := sub.AddressTo
	if addr.FirstName == "" || addr.LastName == "" || addr.Email == "" ||
		addr.Country == "" || addr.Address1 == "" || addr.City == "" || addr.Zip == "" {
		return &APIError{Kind: KindValidation, Message: "shipping address incomplete"}
	}
	return nil
}

// Submit validates, forwards the order upstream, and writes the local
// audit row. Upstream errors pass through typed; no retry.
func (s *DefaultOrderService) Submit(ctx context.Context, sub models.OrderSubmission) (*models.UpstreamOrder, error) {
	if err := ValidateSubmission(sub); err != nil {
		return nil, err
	}
	if sub.ExternalID == "" {
		sub.ExternalID = uuid.New().String()
	}

	order, err := s.Client.SubmitOrder(ctx, sub)
	if err != nil {
		return nil, err
	}

	record := &models.OrderRecord{
		UpstreamOrderID: order.ID,
		ExternalID:      sub.ExternalID,
		Status:          order.Status,
		LineCount:       len(sub.LineItems),
		Email:           sub.AddressTo.Email,
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		// The upstream order exists; a failed audit write must not fail
		// the customer's submission.
		s.Logger.Error("failed to audit apparel order",
			zap.String("upstreamOrderID", order.ID), zap.Error(err))
	}

	return order, nil
}

// Get looks up an upstream order by id.
func (s *DefaultOrderService) Get(ctx context.Context, orderID string) (*models.UpstreamOrder, error) {
	return s.Client.GetOrder(ctx, orderID)
}
