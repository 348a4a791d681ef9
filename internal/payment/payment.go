// Package payment normalizes subscription and purchase events into a
// canonical monthly-recurring-revenue value in minor currency units.
//
// All monetary math runs on exact decimals. Non-monthly plans round the
// monthly value up to the next cent: over-counting is the deliberate,
// conservative policy for revenue estimation, so a plan's MRR is never
// reported a cent short.
package payment

import "github.com/shopspring/decimal"

// Type identifies the billing cadence of a payment.
type Type string

const (
	TypeFree     Type = "free"
	TypeWeekly   Type = "weekly"
	TypeMonthly  Type = "monthly"
	TypeYearly   Type = "yearly"
	TypeLifetime Type = "lifetime"
)

// DefaultLifetimeMonths is the amortization horizon applied to lifetime
// purchases when the caller does not supply one.
const DefaultLifetimeMonths = 24

var hundred = decimal.NewFromInt(100)

// Payment is an immutable, normalized payment value.
type Payment struct {
	// MonthlyValueInCents is the canonical MRR in minor currency units.
	// Always >= 0; exactly 0 for the free tier.
	MonthlyValueInCents int64

	// Type is the original billing cadence, kept for analytics.
	Type Type

	// OriginalAmount is the price in major units of the plan's currency,
	// exact, before any conversion.
	OriginalAmount decimal.Decimal

	// Currency is the ISO 4217 code, e.g. "USD".
	Currency string
}

// Free returns the zero-revenue payment for free-tier users.
func Free() Payment {
	return Payment{
		MonthlyValueInCents: 0,
		Type:                TypeFree,
		OriginalAmount:      decimal.Zero,
		Currency:            "USD",
	}
}

// Weekly normalizes a weekly subscription price.
//
// The conversion uses a flat x4 weeks-per-month multiplier rather than 52/12.
// The backend dashboard computes weekly MRR the same way; keep the constant
// in sync with it.
func Weekly(amount decimal.Decimal, currency string) Payment {
	cents := amount.Mul(hundred).IntPart()
	return Payment{
		MonthlyValueInCents: cents * 4,
		Type:                TypeWeekly,
		OriginalAmount:      amount,
		Currency:            currency,
	}
}

// Monthly normalizes a monthly subscription price. No rounding is involved:
// the price in cents is already the monthly value.
func Monthly(amount decimal.Decimal, currency string) Payment {
	return Payment{
		MonthlyValueInCents: amount.Mul(hundred).IntPart(),
		Type:                TypeMonthly,
		OriginalAmount:      amount,
		Currency:            currency,
	}
}

// Yearly normalizes a yearly subscription price: one twelfth of the price,
// rounded up to the next cent.
func Yearly(amount decimal.Decimal, currency string) Payment {
	monthly := amount.Mul(hundred).Div(decimal.NewFromInt(12)).Ceil().IntPart()
	return Payment{
		MonthlyValueInCents: monthly,
		Type:                TypeYearly,
		OriginalAmount:      amount,
		Currency:            currency,
	}
}

// Lifetime normalizes a one-time purchase amortized over
// DefaultLifetimeMonths.
func Lifetime(amount decimal.Decimal, currency string) Payment {
	return LifetimeMonths(amount, currency, DefaultLifetimeMonths)
}

// LifetimeMonths normalizes a one-time purchase amortized over the given
// number of months, rounded up to the next cent. A non-positive months value
// falls back to DefaultLifetimeMonths.
func LifetimeMonths(amount decimal.Decimal, currency string, months int) Payment {
	if months <= 0 {
		months = DefaultLifetimeMonths
	}
	monthly := amount.Mul(hundred).Div(decimal.NewFromInt(int64(months))).Ceil().IntPart()
	return Payment{
		MonthlyValueInCents: monthly,
		Type:                TypeLifetime,
		OriginalAmount:      amount,
		Currency:            currency,
	}
}

// MonthlyValue returns the MRR in major currency units, for display.
func (p Payment) MonthlyValue() decimal.Decimal {
	return decimal.NewFromInt(p.MonthlyValueInCents).Div(hundred)
}

// AnnualValueInCents returns the annual recurring revenue in cents.
func (p Payment) AnnualValueInCents() int64 {
	return p.MonthlyValueInCents * 12
}

// AnnualValue returns the annual recurring revenue in major currency units.
func (p Payment) AnnualValue() decimal.Decimal {
	return decimal.NewFromInt(p.AnnualValueInCents()).Div(hundred)
}

// IsPaying reports whether this is a paying customer.
func (p Payment) IsPaying() bool {
	return p.MonthlyValueInCents > 0
}

// OriginalAmountInCents returns the original price converted to minor units,
// as sent on sync and submit calls.
func (p Payment) OriginalAmountInCents() int64 {
	return p.OriginalAmount.Mul(hundred).IntPart()
}

// ParseType maps a wire value to a Type; unknown values report free.
func ParseType(s string) Type {
	switch Type(s) {
	case TypeWeekly, TypeMonthly, TypeYearly, TypeLifetime:
		return Type(s)
	default:
		return TypeFree
	}
}
