package domain

import (
	"fmt"
	"sync"
)

// Registry is the exclusive owner of all Instruments. The key set is fixed
// at construction; successful purchases are the only mutation, applied
// through DecrementVolume. Safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	instruments map[string]*Instrument
	// canonical tickers in seed order, so List stays deterministic
	order []string
}

// NewRegistry builds a registry from a finite, non-empty instrument set.
// Tickers are canonicalized; duplicates and invalid instruments are rejected.
func NewRegistry(instruments []Instrument) (*Registry, error) {
	if len(instruments) == 0 {
		return nil, fmt.Errorf("registry requires at least one instrument")
	}

	r := &Registry{
		instruments: make(map[string]*Instrument, len(instruments)),
		order:       make([]string, 0, len(instruments)),
	}

	for _, inst := range instruments {
		inst.Ticker = CanonicalTicker(inst.Ticker)
		if !inst.IsValid() {
			return nil, fmt.Errorf("invalid instrument %q: name, positive price and non-negative volume are required", inst.Ticker)
		}
		if _, exists := r.instruments[inst.Ticker]; exists {
			return nil, fmt.Errorf("duplicate ticker %q", inst.Ticker)
		}

		entry := inst
		r.instruments[inst.Ticker] = &entry
		r.order = append(r.order, inst.Ticker)
	}

	return r, nil
}

// Lookup resolves a ticker (case-insensitive) to a snapshot copy of its
// instrument. Callers never receive a reference into the registry, so reads
// cannot observe a half-updated instrument.
func (r *Registry) Lookup(ticker string) (Instrument, error) {
	canonical := CanonicalTicker(ticker)

	r.mu.RLock()
	defer r.mu.RUnlock()

	inst, ok := r.instruments[canonical]
	if !ok {
		return Instrument{}, fmt.Errorf("%w: %s", ErrTickerNotFound, canonical)
	}
	return *inst, nil
}

// List returns snapshot copies of all instruments in seed order.
func (r *Registry) List() []Instrument {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Instrument, 0, len(r.order))
	for _, ticker := range r.order {
		out = append(out, *r.instruments[ticker])
	}
	return out
}

// Len returns the number of registered instruments.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instruments)
}

// DecrementVolume atomically reduces an instrument's available volume by
// amount and returns the post-decrement snapshot. The availability check and
// the decrement happen under one write lock, so concurrent purchases can
// never jointly oversell. On any error the registry is left unchanged.
func (r *Registry) DecrementVolume(ticker string, amount int64) (Instrument, error) {
	if amount <= 0 {
		return Instrument{}, fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidQuantity, amount)
	}

	canonical := CanonicalTicker(ticker)

	r.mu.Lock()
	defer r.mu.Unlock()

	inst, ok := r.instruments[canonical]
	if !ok {
		return Instrument{}, fmt.Errorf("%w: %s", ErrTickerNotFound, canonical)
	}
	if amount > inst.AvailableVolume {
		return Instrument{}, fmt.Errorf("%w for %s: requested %d, available %d",
			ErrInsufficientShares, inst.Ticker, amount, inst.AvailableVolume)
	}

	inst.AvailableVolume -= amount
	return *inst, nil
}
