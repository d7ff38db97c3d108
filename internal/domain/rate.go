package domain

// TaskRate is a configured per-unit rate used to suggest task amounts from
// order line item quantities.
type TaskRate struct {
	ID               string          `json:"id"`
	TaskType         TaskType        `json:"task_type"`
	Category         ProductCategory `json:"category"`
	RatePerUnitCents int64           `json:"rate_per_unit_cents"`
	Unit             string          `json:"unit"`
	CreatedOn        string          `json:"created_on"`
	UpdatedOn        string          `json:"updated_on"`
}

// VehicleRate is a flat fee for loading/unloading/transport tasks performed
// with a specific vehicle type. It overrides quantity-based rates entirely.
type VehicleRate struct {
	ID           string   `json:"id"`
	TaskType     TaskType `json:"task_type"`
	VehicleType  string   `json:"vehicle_type"`
	FlatFeeCents int64    `json:"flat_fee_cents"`
}
