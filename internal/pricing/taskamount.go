package pricing

import (
	"strings"

	"rentops-backend/internal/domain"
)

// LineItem is the slice of an order a task amount is computed from.
type LineItem struct {
	ProductName string
	Category    domain.ProductCategory
	Quantity    int
}

// Classifier buckets a free-text product name into a category. New categories
// plug in here without touching the rate lookup.
type Classifier func(productName string) domain.ProductCategory

// ClassifyByName is the default classifier: case-insensitive substring match
// against known keywords, anything else lands in the default bucket.
func ClassifyByName(productName string) domain.ProductCategory {
	name := strings.ToLower(productName)
	switch {
	case strings.Contains(name, "chair"):
		return domain.ProductCategoryChairs
	case strings.Contains(name, "table"):
		return domain.ProductCategoryTables
	case strings.Contains(name, "tent"):
		return domain.ProductCategoryTents
	default:
		return domain.ProductCategoryDefault
	}
}

// RateKey identifies one per-unit rate.
type RateKey struct {
	Category domain.ProductCategory
	Task     domain.TaskType
}

// RateTable maps (category, task type) to a per-unit rate in cents. A missing
// pair contributes zero.
type RateTable map[RateKey]int64

// VehicleKey identifies a flat vehicle fee.
type VehicleKey struct {
	Task        domain.TaskType
	VehicleType string
}

// VehicleRates maps (task type, vehicle type) to a flat fee in cents.
type VehicleRates map[VehicleKey]int64

// NewRateTable builds a lookup table from configured task rates.
func NewRateTable(rates []domain.TaskRate) RateTable {
	t := make(RateTable, len(rates))
	for _, r := range rates {
		t[RateKey{Category: r.Category, Task: r.TaskType}] = r.RatePerUnitCents
	}
	return t
}

// NewVehicleRates builds a flat-fee lookup from configured vehicle rates.
func NewVehicleRates(rates []domain.VehicleRate) VehicleRates {
	v := make(VehicleRates, len(rates))
	for _, r := range rates {
		v[VehicleKey{Task: r.TaskType, VehicleType: r.VehicleType}] = r.FlatFeeCents
	}
	return v
}

// vehicleFeeTasks are the task types eligible for a flat vehicle fee.
var vehicleFeeTasks = map[domain.TaskType]bool{
	domain.TaskTypeLoading:   true,
	domain.TaskTypeUnloading: true,
	domain.TaskTypeTransport: true,
}

// Calculator computes suggested task amounts. The suggestion is advisory:
// callers may override it and a zero suggestion never blocks task entry.
type Calculator struct {
	Rates    RateTable
	Vehicles VehicleRates
	Classify Classifier
}

func NewCalculator(rates RateTable, vehicles VehicleRates) *Calculator {
	return &Calculator{Rates: rates, Vehicles: vehicles, Classify: ClassifyByName}
}

// SuggestAmount computes the suggested amount in cents for a task over the
// given line items, rounded to a whole currency unit.
//
// A flat vehicle fee, when configured for the (task, vehicleType) pair, wins
// outright and ignores item quantities.
func (c *Calculator) SuggestAmount(items []LineItem, task domain.TaskType, vehicleType string) int64 {
	if vehicleType != "" && vehicleFeeTasks[task] {
		if fee, ok := c.Vehicles[VehicleKey{Task: task, VehicleType: vehicleType}]; ok {
			return roundToWholeUnit(fee)
		}
	}

	classify := c.Classify
	if classify == nil {
		classify = ClassifyByName
	}

	var total int64
	for _, item := range items {
		category := item.Category
		if category == "" {
			category = classify(item.ProductName)
		}
		rate := c.Rates[RateKey{Category: category, Task: task}]
		total += rate * int64(item.Quantity)
	}
	return roundToWholeUnit(total)
}

// roundToWholeUnit rounds cents half-up to the nearest whole currency unit.
func roundToWholeUnit(cents int64) int64 {
	return (cents + 50) / 100 * 100
}
