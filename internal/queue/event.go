// Package queue defines message payloads exchanged over the message broker.
package queue

// PaymentRecordedEvent is published after a payment finalization completes.
// It carries enough for downstream consumers to log or trigger receipts
// without querying the primary database.
type PaymentRecordedEvent struct {
	PaymentID  string  `json:"payment_id"`
	Email      string  `json:"email"`
	ClassID    string  `json:"class_id"`
	ClassName  string  `json:"class_name"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`
	RecordedAt string  `json:"recorded_at"`
}
