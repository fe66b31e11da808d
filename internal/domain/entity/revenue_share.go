package entity

import (
	"github.com/shopspring/decimal"
)

// RevenueShareMode selects how much of an unlock price reaches the beneficiary.
type RevenueShareMode string

const (
	// RevenueShareNone disables crediting; unlocks only debit the reader.
	RevenueShareNone RevenueShareMode = "none"
	// RevenueShareRatio credits floor(cost * ratio).
	RevenueShareRatio RevenueShareMode = "ratio"
	// RevenueShareFee credits cost minus a fixed platform fee.
	RevenueShareFee RevenueShareMode = "fee"
)

// DefaultRevenueShareRatio yields 4 of 5 coins, keeping a 1-coin platform fee at the default price.
var DefaultRevenueShareRatio = decimal.NewFromFloat(0.8)

// RevenueSharePolicy computes the beneficiary share of an unlock price.
type RevenueSharePolicy struct {
	Mode        RevenueShareMode
	Ratio       decimal.Decimal
	PlatformFee int64
}

// Share returns the number of coins credited to the beneficiary for a given cost.
// The result is always within [0, cost].
func (p RevenueSharePolicy) Share(cost int64) int64 {
	if cost <= 0 {
		return 0
	}

	var share int64
	switch p.Mode {
	case RevenueShareRatio:
		ratio := p.Ratio
		if ratio.IsZero() {
			ratio = DefaultRevenueShareRatio
		}
		share = decimal.NewFromInt(cost).Mul(ratio).Floor().IntPart()
	case RevenueShareFee:
		share = cost - p.PlatformFee
	default:
		return 0
	}

	return min(max(share, 0), cost)
}

// Enabled reports whether the policy ever credits a beneficiary.
func (p RevenueSharePolicy) Enabled() bool {
	return p.Mode == RevenueShareRatio || p.Mode == RevenueShareFee
}
