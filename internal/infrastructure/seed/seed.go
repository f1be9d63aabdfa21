// Package seed loads the instrument catalog the registry is initialized
// with. The catalog is configuration, not contract: the core works for any
// finite, non-empty instrument set.
package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmanzanog/stock-sim/internal/domain"
)

// Entry is one instrument as it appears in a seed file. Price is a decimal
// string so catalogs never lose precision to float parsing.
type Entry struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	Price  string `json:"price"`
	Volume int64  `json:"volume"`
}

// Default returns the built-in demo catalog, used when no seed file is
// configured so the server runs out of the box.
func Default() []domain.Instrument {
	mustDecimal := func(s string) domain.Decimal {
		d, err := domain.NewDecimalFromString(s)
		if err != nil {
			panic(fmt.Sprintf("invalid built-in seed price %q: %v", s, err))
		}
		return d
	}

	return []domain.Instrument{
		domain.NewInstrument("AAPL", "Apple Inc.", mustDecimal("150.12"), 100),
		domain.NewInstrument("MSFT", "Microsoft Corporation", mustDecimal("310.45"), 80),
		domain.NewInstrument("GOOGL", "Alphabet Inc.", mustDecimal("138.21"), 60),
	}
}

// Load reads a JSON catalog file and converts it to domain instruments.
func Load(path string) ([]domain.Instrument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("seed file %s contains no instruments", path)
	}

	instruments := make([]domain.Instrument, 0, len(entries))
	for _, e := range entries {
		price, err := domain.NewDecimalFromString(e.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price for %q: %w", e.Ticker, err)
		}

		inst := domain.NewInstrument(e.Ticker, e.Name, price, e.Volume)
		if !inst.IsValid() {
			return nil, fmt.Errorf("invalid seed entry %q: ticker, name, positive price and non-negative volume are required", e.Ticker)
		}
		instruments = append(instruments, inst)
	}

	return instruments, nil
}
