// Package payment simulates the payment provider. Every charge succeeds;
// there is no real gateway behind it.
package payment

import "github.com/google/uuid"

const StatusSuccess = "success"

// Result is the outcome of a (mock) charge.
type Result struct {
	PaymentID string  `json:"payment_id"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
}

// Process "charges" the given amount and always succeeds.
func Process(amount float64) Result {
	return Result{
		PaymentID: uuid.NewString(),
		Status:    StatusSuccess,
		Amount:    amount,
	}
}
