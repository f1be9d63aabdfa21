package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmanzanog/stock-sim/internal/domain"
)

// TradingService executes the trading operations against the registry. All
// operations are synchronous and single-shot: they either fully succeed or
// leave the registry unchanged.
type TradingService struct {
	registry *domain.Registry
}

func NewTradingService(registry *domain.Registry) *TradingService {
	return &TradingService{
		registry: registry,
	}
}

// StockListing is the public listing shape: ticker and display name only,
// no price or volume.
type StockListing struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
}

// PriceQuote is the response shape for a price query.
type PriceQuote struct {
	Ticker string         `json:"ticker"`
	Price  domain.Decimal `json:"price"`
}

// ListStocks returns all tradable instruments in registry order.
func (s *TradingService) ListStocks(ctx context.Context) []StockListing {
	instruments := s.registry.List()

	listings := make([]StockListing, 0, len(instruments))
	for _, inst := range instruments {
		listings = append(listings, StockListing{
			Ticker: inst.Ticker,
			Name:   inst.Name,
		})
	}
	return listings
}

// GetPrice returns the current price for a ticker. No side effects.
func (s *TradingService) GetPrice(ctx context.Context, ticker string) (*PriceQuote, error) {
	inst, err := s.registry.Lookup(ticker)
	if err != nil {
		return nil, err
	}

	return &PriceQuote{
		Ticker: inst.Ticker,
		Price:  inst.Price,
	}, nil
}

// Buy purchases quantity shares of ticker. Quantity positivity is validated
// first; the registry then checks ticker existence before availability, so
// an unknown ticker is never reported as insufficient shares. The
// check-and-decrement is atomic inside the registry.
func (s *TradingService) Buy(ctx context.Context, ticker string, quantity int64) (*domain.PurchaseReceipt, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive, got %d", domain.ErrInvalidQuantity, quantity)
	}

	updated, err := s.registry.DecrementVolume(ticker, quantity)
	if err != nil {
		return nil, err
	}

	receipt, err := domain.NewPurchaseReceipt(updated, quantity)
	if err != nil {
		// Arithmetic on a validated price cannot fail; treat as a fault.
		return nil, fmt.Errorf("failed to build receipt for %s: %w", updated.Ticker, err)
	}

	slog.InfoContext(ctx, "Purchase executed",
		"ticker", receipt.Ticker,
		"quantity", receipt.Quantity,
		"total_cost", receipt.TotalCost.String(),
		"remaining_volume", receipt.RemainingVolume,
	)

	return &receipt, nil
}
