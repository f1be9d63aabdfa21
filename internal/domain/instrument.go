package domain

import "strings"

// Instrument is one tradable stock. Price is immutable for the process
// lifetime; AvailableVolume is the only mutable field and only the Registry
// mutates it.
type Instrument struct {
	Ticker          string  `json:"ticker"`
	Name            string  `json:"name"`
	Price           Decimal `json:"price"`
	AvailableVolume int64   `json:"available_volume"`
}

func NewInstrument(ticker, name string, price Decimal, availableVolume int64) Instrument {
	return Instrument{
		Ticker:          CanonicalTicker(ticker),
		Name:            name,
		Price:           price,
		AvailableVolume: availableVolume,
	}
}

func (i Instrument) IsValid() bool {
	return i.Ticker != "" && i.Name != "" && i.Price.IsPositive() && i.AvailableVolume >= 0
}

// CanonicalTicker normalizes a ticker symbol for lookups. Tickers are
// case-insensitive; the canonical form is trimmed uppercase.
func CanonicalTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
