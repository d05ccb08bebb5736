package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/platansad/storefront/internal/api"
	"github.com/platansad/storefront/internal/constants"
	"github.com/platansad/storefront/internal/logger"
	"github.com/platansad/storefront/internal/models"
	"github.com/platansad/storefront/internal/notify"
	"github.com/platansad/storefront/internal/store"
)

var (
	ErrFormInvalid = errors.New("checkout form invalid")
	ErrCartEmpty   = errors.New("cart is empty")
)

// PaymentPoller schedules background payment status checks after a card
// checkout session is opened.
type PaymentPoller interface {
	EnqueuePaymentStatusPoll(orderID string, delay time.Duration) error
}

// Result is the submission outcome. PaymentURL is set for card payments
// only; the caller redirects there.
type Result struct {
	Order      *models.Order     `json:"order"`
	PaymentURL string            `json:"paymentUrl,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
}

// Submitter turns a validated form plus the current cart into an order.
type Submitter struct {
	cart   *store.CartStore
	orders api.OrdersAPI
	liqpay api.LiqPayAPI
	poller PaymentPoller
	notify notify.Notifier
}

// NewSubmitter wires the submission flow. Poller may be nil when the worker
// is not running; card orders then rely on on-demand status checks.
func NewSubmitter(cart *store.CartStore, orders api.OrdersAPI, liqpay api.LiqPayAPI, poller PaymentPoller, notifier notify.Notifier) *Submitter {
	return &Submitter{
		cart:   cart,
		orders: orders,
		liqpay: liqpay,
		poller: poller,
		notify: notifier,
	}
}

// Submit validates the form, places the order from the current cart and
// clears the cart. The clear is silent: a failed clear never turns a placed
// order into an error. Card payments additionally open a LiqPay session.
func (s *Submitter) Submit(ctx context.Context, form Form) (*Result, error) {
	if errs := form.Validate(); len(errs) > 0 {
		s.notify.Error("Заповніть всі обов'язкові поля")
		return &Result{Errors: errs}, ErrFormInvalid
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	lines := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, models.OrderItem{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			Price:        item.Price,
			Quantity:     item.Quantity,
		})
	}

	order := models.OrderCreate{
		Items:           lines,
		TotalAmount:     s.cart.Total(),
		CustomerName:    form.CustomerName,
		CustomerPhone:   form.CustomerPhone,
		CustomerEmail:   form.CustomerEmail,
		DeliveryAddress: form.DeliveryAddress,
		DeliveryMethod:  form.DeliveryMethod,
		PaymentMethod:   form.PaymentMethod,
		Notes:           form.Notes,
		UserID:          constants.GuestUserID,
	}

	created, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		logger.Errorw("order_create_failed", "error", err)
		s.notify.Error("Помилка оформлення замовлення")
		return nil, err
	}

	s.cart.Clear(ctx)

	result := &Result{Order: created}
	if form.PaymentMethod == constants.PaymentMethodCard {
		session, err := s.liqpay.CreateCheckout(ctx, created.ID, created.TotalAmount.String(), "", "", "")
		if err != nil {
			// The order exists; payment can be retried from the order page.
			logger.Errorw("liqpay_checkout_failed", "order_id", created.ID, "error", err)
			s.notify.Warning("Замовлення створено, але оплату не вдалося розпочати")
			return result, nil
		}
		result.PaymentURL = session.PaymentURL
		if s.poller != nil {
			if err := s.poller.EnqueuePaymentStatusPoll(created.ID, 30*time.Second); err != nil {
				logger.Errorw("payment_poll_enqueue_failed", "order_id", created.ID, "error", err)
			}
		}
	}

	s.notify.Success("Замовлення успішно оформлено!")
	return result, nil
}
