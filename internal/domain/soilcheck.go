package domain

import "time"

type SoilCheckStatus string

const (
	SoilCheckStatusPending   SoilCheckStatus = "pending"
	SoilCheckStatusCompleted SoilCheckStatus = "completed"
)

type SoilCheck struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	FarmLocation string          `json:"farm_location"`
	CropType     string          `json:"crop_type"`
	Notes        string          `json:"notes,omitempty"`
	Status       SoilCheckStatus `json:"status"`
	Result       string          `json:"result,omitempty"`
	CreatedOn    time.Time       `json:"created_on"`
	UpdatedOn    time.Time       `json:"updated_on"`
}
