package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPaid PaymentStatus = "paid"
)

// Payment is immutable once created: exactly one row per successful gateway
// payment, enforced by a unique index on razorpay_payment_id.
type Payment struct {
	ID                string        `json:"id"`
	UserID            string        `json:"user_id"`
	BookingID         string        `json:"booking_id"`
	Type              BookingType   `json:"type"`
	Amount            float64       `json:"amount"`
	PaymentStatus     PaymentStatus `json:"payment_status"`
	TransactionID     string        `json:"transaction_id"`
	RazorpayPaymentID string        `json:"razorpay_payment_id"`
	RazorpayOrderID   string        `json:"razorpay_order_id"`
	PaymentDate       time.Time     `json:"payment_date"`
}
