package domain

import "time"

type BookingType string

const (
	BookingTypeTool      BookingType = "tool"
	BookingTypeWarehouse BookingType = "warehouse"
)

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusAccepted BookingStatus = "accepted"
	BookingStatusRejected BookingStatus = "rejected"
	BookingStatusPaid     BookingStatus = "paid"
)

// Booking covers both tool and warehouse bookings. Type selects which of the
// two tables the row lives in; ItemID references the tool or the warehouse
// storage option accordingly.
type Booking struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	Type            BookingType   `json:"type"`
	ItemID          string        `json:"item_id"`
	ItemName        string        `json:"item_name,omitempty"`
	BookerName      string        `json:"booker_name,omitempty"`
	StartDate       time.Time     `json:"start_date"`
	EndDate         time.Time     `json:"end_date"`
	Sqft            float64       `json:"sqft,omitempty"`
	TotalCost       float64       `json:"total_cost"`
	Status          BookingStatus `json:"status"`
	RejectionReason string        `json:"rejection_reason,omitempty"`
	CreatedOn       time.Time     `json:"created_on"`
	UpdatedOn       time.Time     `json:"updated_on"`
}
