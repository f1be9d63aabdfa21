package domain

import "fmt"

// PurchaseReceipt records the terms of a completed purchase. It is a pure
// response artifact: immutable once constructed and never persisted.
type PurchaseReceipt struct {
	Ticker          string  `json:"ticker"`
	Quantity        int64   `json:"quantity"`
	PricePerShare   Decimal `json:"price_per_share"`
	TotalCost       Decimal `json:"total_cost"`
	RemainingVolume int64   `json:"remaining_volume"`
}

// NewPurchaseReceipt builds a receipt from the post-decrement instrument
// snapshot. TotalCost is price × quantity, computed exactly.
func NewPurchaseReceipt(inst Instrument, quantity int64) (PurchaseReceipt, error) {
	total, err := inst.Price.Mul(NewDecimalFromInt(quantity))
	if err != nil {
		return PurchaseReceipt{}, fmt.Errorf("failed to compute total cost: %w", err)
	}

	return PurchaseReceipt{
		Ticker:          inst.Ticker,
		Quantity:        quantity,
		PricePerShare:   inst.Price,
		TotalCost:       total,
		RemainingVolume: inst.AvailableVolume,
	}, nil
}
