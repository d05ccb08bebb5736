package api

import (
	"context"
	"fmt"
	"net/url"
)

// LiqPaySession is the checkout session returned by the backend; the client
// is redirected to PaymentURL to pay.
type LiqPaySession struct {
	OrderID    string `json:"order_id"`
	PaymentURL string `json:"payment_url"`
	Data       string `json:"data,omitempty"`
	Signature  string `json:"signature,omitempty"`
}

// LiqPayStatus is the payment state for an order.
type LiqPayStatus struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// LiqPayAPI is the payment resource contract.
type LiqPayAPI interface {
	CreateCheckout(ctx context.Context, orderID, amount, description, resultURL, serverURL string) (*LiqPaySession, error)
	GetStatus(ctx context.Context, orderID string) (*LiqPayStatus, error)
}

// LiqPayClient wraps the /api/liqpay resource. The backend owns the signing
// keys; session parameters travel in the query string per its contract.
type LiqPayClient struct {
	client *Client
}

// NewLiqPayClient creates a payment resource wrapper.
func NewLiqPayClient(client *Client) *LiqPayClient {
	return &LiqPayClient{client: client}
}

// CreateCheckout opens a payment session for an order.
func (c *LiqPayClient) CreateCheckout(ctx context.Context, orderID, amount, description, resultURL, serverURL string) (*LiqPaySession, error) {
	query := url.Values{}
	query.Set("order_id", orderID)
	query.Set("amount", amount)
	if description == "" {
		description = "Оплата замовлення PlatanSad"
	}
	query.Set("description", description)
	if resultURL != "" {
		query.Set("result_url", resultURL)
	}
	if serverURL != "" {
		query.Set("server_url", serverURL)
	}

	var session LiqPaySession
	if err := c.client.do(ctx, "POST", "/api/liqpay/create-checkout", query, nil, &session, false); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetStatus polls the payment state of an order.
func (c *LiqPayClient) GetStatus(ctx context.Context, orderID string) (*LiqPayStatus, error) {
	var status LiqPayStatus
	if err := c.client.getJSON(ctx, fmt.Sprintf("/api/liqpay/status/%s", orderID), nil, &status, false); err != nil {
		return nil, err
	}
	return &status, nil
}
