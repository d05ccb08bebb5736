// Package worker runs the asynq consumer side of the storefront.
package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/platansad/storefront/internal/cache"
	"github.com/platansad/storefront/internal/constants"
	"github.com/platansad/storefront/internal/logger"
	"github.com/platansad/storefront/internal/provider"
	"github.com/platansad/storefront/internal/queue"

	"github.com/hibiken/asynq"
)

const (
	maxPollAttempts = 20
	pollInterval    = 30 * time.Second
	statusCacheTTL  = 24 * time.Hour
)

// Consumer handles the storefront's background tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer over the container.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register attaches the task handlers.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskPaymentStatusPoll, c.handlePaymentStatusPoll)
}

// handlePaymentStatusPoll checks one order's LiqPay status, caches the
// result, and reschedules itself while the payment is still in flight.
func (c *Consumer) handlePaymentStatusPoll(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.PaymentStatusPollPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_payment_poll_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == "" {
		logger.Debugw("worker_payment_poll_skip_empty_order")
		return nil
	}

	status, err := c.LiqPayAPI.GetStatus(ctx, payload.OrderID)
	if err != nil {
		logger.Warnw("worker_payment_poll_status_failed",
			"order_id", payload.OrderID,
			"attempt", payload.Attempt,
			"error", err,
		)
		return err
	}

	if err := cache.SetJSON(ctx, constants.CacheKeyLiqPayStatus+payload.OrderID, status, statusCacheTTL); err != nil {
		logger.Warnw("worker_payment_poll_cache_failed", "order_id", payload.OrderID, "error", err)
	}

	switch status.Status {
	case constants.LiqPayStatusProcessing, constants.LiqPayStatusWaitSecure:
		if payload.Attempt >= maxPollAttempts {
			logger.Warnw("worker_payment_poll_gave_up",
				"order_id", payload.OrderID,
				"attempts", payload.Attempt,
				"last_status", status.Status,
			)
			return nil
		}
		next := queue.PaymentStatusPollPayload{OrderID: payload.OrderID, Attempt: payload.Attempt + 1}
		if err := c.QueueClient.EnqueuePaymentStatusPollAttempt(next, pollInterval); err != nil {
			logger.Errorw("worker_payment_poll_reschedule_failed", "order_id", payload.OrderID, "error", err)
			return err
		}
		return nil
	default:
		logger.Infow("worker_payment_poll_settled",
			"order_id", payload.OrderID,
			"status", status.Status,
			"attempts", payload.Attempt,
		)
		return nil
	}
}
