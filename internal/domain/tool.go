package domain

import "time"

type Tool struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Category       string    `json:"category"`
	ImageURL       string    `json:"image_url,omitempty"`
	PricePerDay    float64   `json:"price_per_day"`
	PricePerMonth  float64   `json:"price_per_month"`
	PricePerSeason float64   `json:"price_per_season"`
	Availability   bool      `json:"availability"`
	Location       string    `json:"location,omitempty"`
	CreatedOn      time.Time `json:"created_on"`
	UpdatedOn      time.Time `json:"updated_on"`
}
