// Package orders proxies the print-on-demand apparel upstream: order
// submission and lookup with a typed error taxonomy.
package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"wavecrest/models"
)

const defaultTimeout = 15 * time.Second

// Client is the print-on-demand API client.
type Client struct {
	baseURL    string
	token      string
	shopID     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a print-on-demand API client.
func NewClient(baseURL, token, shopID string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		shopID:  shopID,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// WithBaseURL overrides the upstream base URL (for testing).
func (c *Client) WithBaseURL(baseURL string) *Client {
	if baseURL != "" {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
	return c
}

// SubmitOrder posts an order to the upstream and returns its order
// object.
func (c *Client) SubmitOrder(ctx context.Context, sub models.OrderSubmission) (*models.UpstreamOrder, error) {
	url := fmt.Sprintf("%s/shops/%s/orders.json", c.baseURL, c.shopID)

	body, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order submission: %w", err)
	}

	var order models.UpstreamOrder
	if err := c.do(ctx, http.MethodPost, url, bytes.NewReader(body), &order); err != nil {
		return nil, err
	}

	c.logger.Info("apparel order submitted",
		zap.String("upstreamOrderID", order.ID),
		zap.String("externalID", sub.ExternalID),
		zap.Int("lineItems", len(sub.LineItems)))
	return &order, nil
}

// GetOrder fetches an upstream order by id.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*models.UpstreamOrder, error) {
	url := fmt.Sprintf("%s/shops/%s/orders/%s.json", c.baseURL, c.shopID, orderID)

	var order models.UpstreamOrder
	if err := c.do(ctx, http.MethodGet, url, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) do(ctx context.Context, method, url string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Kind: KindUpstream, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: KindUpstream, StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Kind:       kindForStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(data),
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{Kind: KindUpstream, StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	return nil
}

// upstreamMessage pulls a human message out of an error body, falling
// back to the raw payload.
func upstreamMessage(data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return strings.TrimSpace(string(data))
}
