package domain

import "time"

type Warehouse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Location       string          `json:"location"`
	Description    string          `json:"description,omitempty"`
	ImageURL       string          `json:"image_url,omitempty"`
	CapacitySqft   float64         `json:"capacity_sqft"`
	StorageOptions []StorageOption `json:"storage_options,omitempty"`
	CreatedOn      time.Time       `json:"created_on"`
	UpdatedOn      time.Time       `json:"updated_on"`
}

// StorageOption is a bookable unit inside a warehouse: cold storage, dry
// storage, etc., priced per square foot.
type StorageOption struct {
	ID                string  `json:"id"`
	WarehouseID       string  `json:"warehouse_id"`
	StorageType       string  `json:"storage_type"`
	PricePerSqftDay   float64 `json:"price_per_sqft_day"`
	PricePerSqftMonth float64 `json:"price_per_sqft_month"`
}
