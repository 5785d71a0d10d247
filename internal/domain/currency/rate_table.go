// Package currency converts amounts between the supported currencies using
// a fixed, read-only rate table.
package currency

import (
	"errors"
	"fmt"
	"math"
	"sort"

	domainerrors "github.com/Haleralex/pricecalc/internal/domain/errors"
	"github.com/Haleralex/pricecalc/internal/domain/valueobjects"
)

// Base rates of the default table.
const (
	EURToUSD = 1.1
	USDToGBP = 0.8
)

// ErrInvalidRate is returned when a table is built with a bad entry.
var ErrInvalidRate = errors.New("invalid exchange rate")

// Pair is an ordered pair of uppercase currency codes.
type Pair struct {
	From string
	To   string
}

// NewPair builds a normalized pair from codes in any casing.
func NewPair(from, to string) Pair {
	return Pair{
		From: valueobjects.NormalizeCurrencyCode(from),
		To:   valueobjects.NormalizeCurrencyCode(to),
	}
}

// Key returns the "FROM_TO" form used when listing rates.
func (p Pair) Key() string {
	return p.From + "_" + p.To
}

// String implements fmt.Stringer.
func (p Pair) String() string {
	return p.From + "->" + p.To
}

// RateTable maps ordered currency pairs to multipliers.
// A RateTable is immutable after construction and safe for concurrent reads.
type RateTable struct {
	rates map[Pair]float64
}

// NewRateTable copies rates into a new table. Every rate must be a positive
// finite multiplier and pairs must not be identities.
func NewRateTable(rates map[Pair]float64) (RateTable, error) {
	table := make(map[Pair]float64, len(rates))
	for pair, rate := range rates {
		p := NewPair(pair.From, pair.To)
		if p.From == "" || p.To == "" {
			return RateTable{}, fmt.Errorf("%w: empty currency code in %v", ErrInvalidRate, pair)
		}
		if p.From == p.To {
			return RateTable{}, fmt.Errorf("%w: identity pair %v", ErrInvalidRate, p)
		}
		if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
			return RateTable{}, fmt.Errorf("%w: %v = %v", ErrInvalidRate, p, rate)
		}
		table[p] = rate
	}
	return RateTable{rates: table}, nil
}

// MustNewRateTable is NewRateTable that panics on error.
func MustNewRateTable(rates map[Pair]float64) RateTable {
	t, err := NewRateTable(rates)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultRateTable returns the static EUR/USD/GBP table with all six
// directed pairs derived from EUR->USD and USD->GBP.
func DefaultRateTable() RateTable {
	return MustNewRateTable(map[Pair]float64{
		{From: "EUR", To: "USD"}: EURToUSD,
		{From: "USD", To: "GBP"}: USDToGBP,
		{From: "USD", To: "EUR"}: 1 / EURToUSD,
		{From: "GBP", To: "USD"}: 1 / USDToGBP,
		{From: "EUR", To: "GBP"}: EURToUSD * USDToGBP,
		{From: "GBP", To: "EUR"}: 1 / (EURToUSD * USDToGBP),
	})
}

// Rate returns the multiplier for from->to. Identical codes yield exactly 1
// without consulting the table; a pair absent from the table is a
// *domainerrors.RateUnavailableError, even when it could be derived.
func (t RateTable) Rate(from, to string) (float64, error) {
	p := NewPair(from, to)
	if p.From == p.To {
		return 1, nil
	}
	rate, ok := t.rates[p]
	if !ok {
		return 0, domainerrors.NewRateUnavailableError(p.From, p.To)
	}
	return rate, nil
}

// Rates returns a copy of the table keyed by "FROM_TO".
func (t RateTable) Rates() map[string]float64 {
	out := make(map[string]float64, len(t.rates))
	for p, r := range t.rates {
		out[p.Key()] = r
	}
	return out
}

// Pairs returns the pairs of the table sorted by key.
func (t RateTable) Pairs() []Pair {
	pairs := make([]Pair, 0, len(t.rates))
	for p := range t.rates {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Key() < pairs[j].Key()
	})
	return pairs
}
