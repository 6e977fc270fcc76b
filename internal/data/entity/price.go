package entity

import (
	"fmt"
	"math"
)

type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyTRY Currency = "TRY"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyEUR, CurrencyUSD, CurrencyTRY:
		return true
	}
	return false
}

// Price is an immutable amount + currency pair. Equality is by value.
type Price struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

// NewPrice constructs a Price. Construction fails on negative or non-finite
// amounts and unknown currencies.
func NewPrice(amount float64, currency Currency) (Price, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Price{}, fmt.Errorf("price amount must be finite")
	}
	if amount < 0 {
		return Price{}, fmt.Errorf("price amount must be non-negative, got %v", amount)
	}
	if !currency.Valid() {
		return Price{}, fmt.Errorf("unknown currency %q", currency)
	}
	return Price{Amount: amount, Currency: currency}, nil
}

// MustPrice is for amounts already known to be valid (clamped calculator
// output). Panics on violation, which would be a programming error.
func MustPrice(amount float64, currency Currency) Price {
	p, err := NewPrice(amount, currency)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Price) Equals(other Price) bool {
	return p.Amount == other.Amount && p.Currency == other.Currency
}
