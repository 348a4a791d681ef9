package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/featurepulse/featurepulse-go/internal/models"
	"github.com/featurepulse/featurepulse-go/internal/payment"
)

func (a *App) setUser(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: user <id|email|name> <value>")
		return
	}
	field := args[0]
	value := strings.Join(args[1:], " ")

	switch field {
	case "id", "email", "name":
	default:
		fmt.Println("Usage: user <id|email|name> <value>")
		return
	}

	a.store.UpdateUser(ctx, func(u *models.User) {
		switch field {
		case "id":
			u.CustomID = value
		case "email":
			u.Email = value
		case "name":
			u.Name = value
		}
	})
	fmt.Printf("User %s set to %q.\n", field, value)
}

func (a *App) setPayment(ctx context.Context, args []string) {
	p, err := parsePayment(args)
	if err != nil {
		fmt.Println(err)
		fmt.Println("Usage: payment <free|weekly|monthly|yearly|lifetime> [amount] [currency] [months]")
		return
	}

	a.store.UpdateUser(ctx, func(u *models.User) {
		u.Payment = &p
	})
	fmt.Printf("Payment recorded: %s, %s %s/month.\n", p.Type, p.Currency, formatCents(p.MonthlyValueInCents))
}

// parsePayment turns command arguments into a normalized payment,
// e.g. "monthly 7.99 USD" or "lifetime 199.99 EUR 36".
func parsePayment(args []string) (payment.Payment, error) {
	if len(args) == 0 {
		return payment.Payment{}, errors.New("missing payment type")
	}

	typ := payment.ParseType(args[0])
	if typ == payment.TypeFree {
		if args[0] != string(payment.TypeFree) {
			return payment.Payment{}, fmt.Errorf("unknown payment type %q", args[0])
		}
		return payment.Free(), nil
	}

	if len(args) < 2 {
		return payment.Payment{}, errors.New("missing amount")
	}
	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		return payment.Payment{}, fmt.Errorf("not an amount: %q", args[1])
	}

	currency := "USD"
	if len(args) >= 3 {
		currency = strings.ToUpper(args[2])
	}

	switch typ {
	case payment.TypeWeekly:
		return payment.Weekly(amount, currency), nil
	case payment.TypeMonthly:
		return payment.Monthly(amount, currency), nil
	case payment.TypeYearly:
		return payment.Yearly(amount, currency), nil
	case payment.TypeLifetime:
		if len(args) >= 4 {
			months, err := strconv.Atoi(args[3])
			if err != nil {
				return payment.Payment{}, fmt.Errorf("not a month count: %q", args[3])
			}
			return payment.LifetimeMonths(amount, currency, months), nil
		}
		return payment.Lifetime(amount, currency), nil
	}

	return payment.Payment{}, fmt.Errorf("unknown payment type %q", args[0])
}

func formatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

func (a *App) whoami(ctx context.Context) {
	fmt.Println("Device ID: ", a.user.DeviceID)
	if a.user.CustomID != "" {
		fmt.Println("User ID:   ", a.user.CustomID)
	}
	if a.user.Name != "" {
		fmt.Println("Name:      ", a.user.Name)
	}
	if a.user.Email != "" {
		fmt.Println("Email:     ", a.user.Email)
	}
	if p := a.user.Payment; p != nil {
		fmt.Printf("Payment:    %s, %s %s/month\n", p.Type, p.Currency, formatCents(p.MonthlyValueInCents))
	}

	count, err := a.tracker.SessionCount(ctx)
	if err == nil {
		fmt.Println("Sessions:  ", count)
	}
}
