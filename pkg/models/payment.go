package models

import "time"

type Payment struct {
	ID          int64     `json:"payment_id"`
	FineID      int64     `json:"fine_id"`
	DriverID    int64     `json:"driver_id"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	ReceiptURL  string    `json:"receipt_url"`
	PaymentDate time.Time `json:"payment_date"`
}

// CheckoutSession is what the frontend needs to hand the driver over to the
// provider-hosted payment page.
type CheckoutSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}
