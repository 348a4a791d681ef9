package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFree_IsAlwaysZero(t *testing.T) {
	p := Free()
	assert.Equal(t, int64(0), p.MonthlyValueInCents)
	assert.Equal(t, TypeFree, p.Type)
	assert.False(t, p.IsPaying())
}

func TestMonthly_ExactCents(t *testing.T) {
	p := Monthly(dec("7.99"), "USD")
	assert.Equal(t, int64(799), p.MonthlyValueInCents)
	assert.Equal(t, TypeMonthly, p.Type)
	assert.Equal(t, "USD", p.Currency)
}

func TestWeekly_FlatFourWeekMultiplier(t *testing.T) {
	p := Weekly(dec("2.99"), "USD")
	// 299 cents x 4 weeks, not the 52/12 ratio
	assert.Equal(t, int64(1196), p.MonthlyValueInCents)
}

func TestYearly_DividedByTwelveRoundedUp(t *testing.T) {
	p := Yearly(dec("79.99"), "EUR")
	// ceil(7999 / 12) = 667
	assert.Equal(t, int64(667), p.MonthlyValueInCents)
}

func TestYearly_ExactDivisionNotRounded(t *testing.T) {
	p := Yearly(dec("120.00"), "USD")
	assert.Equal(t, int64(1000), p.MonthlyValueInCents)
}

func TestLifetime_DefaultAmortization(t *testing.T) {
	p := Lifetime(dec("99.99"), "USD")
	// ceil(9999 / 24) = 417
	assert.Equal(t, int64(417), p.MonthlyValueInCents)
	assert.Equal(t, TypeLifetime, p.Type)
}

func TestLifetimeMonths_CustomAmortization(t *testing.T) {
	p := LifetimeMonths(dec("199.99"), "USD", 36)
	// ceil(19999 / 36) = 556
	assert.Equal(t, int64(556), p.MonthlyValueInCents)
}

func TestLifetimeMonths_NonPositiveFallsBackToDefault(t *testing.T) {
	want := Lifetime(dec("99.99"), "USD").MonthlyValueInCents
	assert.Equal(t, want, LifetimeMonths(dec("99.99"), "USD", 0).MonthlyValueInCents)
	assert.Equal(t, want, LifetimeMonths(dec("99.99"), "USD", -3).MonthlyValueInCents)
}

func TestNormalize_NeverNegative(t *testing.T) {
	cases := []Payment{
		Free(),
		Weekly(dec("0.01"), "USD"),
		Monthly(dec("0.00"), "USD"),
		Yearly(dec("0.01"), "USD"),
		Lifetime(dec("0.01"), "USD"),
	}
	for _, p := range cases {
		assert.GreaterOrEqual(t, p.MonthlyValueInCents, int64(0), "type %s", p.Type)
	}
}

func TestDerivedValues(t *testing.T) {
	p := Monthly(dec("7.99"), "USD")

	assert.True(t, p.IsPaying())
	assert.Equal(t, int64(9588), p.AnnualValueInCents())
	assert.True(t, p.MonthlyValue().Equal(dec("7.99")))
	assert.True(t, p.AnnualValue().Equal(dec("95.88")))
	assert.Equal(t, int64(799), p.OriginalAmountInCents())
}

func TestOriginalAmountIsExact(t *testing.T) {
	p := Yearly(dec("79.99"), "USD")
	require.True(t, p.OriginalAmount.Equal(dec("79.99")))
	assert.Equal(t, int64(7999), p.OriginalAmountInCents())
}

func TestParseType(t *testing.T) {
	assert.Equal(t, TypeYearly, ParseType("yearly"))
	assert.Equal(t, TypeFree, ParseType("free"))
	assert.Equal(t, TypeFree, ParseType("quarterly"))
}
