package queue

import (
	"encoding/json"

	"github.com/platansad/storefront/internal/constants"

	"github.com/hibiken/asynq"
)

// TaskPaymentStatusPoll checks a LiqPay payment and reschedules itself while
// the payment is still in flight.
const TaskPaymentStatusPoll = constants.TaskPaymentStatusPoll

// PaymentStatusPollPayload identifies one poll round for an order.
type PaymentStatusPollPayload struct {
	OrderID string `json:"order_id"`
	Attempt int    `json:"attempt"`
}

// NewPaymentStatusPollTask creates a payment status poll task.
func NewPaymentStatusPollTask(payload PaymentStatusPollPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPaymentStatusPoll, body), nil
}
