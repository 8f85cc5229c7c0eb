package response

import (
	"fmt"
	"strings"

	"stripe_testbed/internal/domain/entities"
)

// zeroDecimalCurrencies have no minor unit; Stripe amounts are whole units.
var zeroDecimalCurrencies = map[string]bool{
	"bif": true, "clp": true, "djf": true, "gnf": true, "jpy": true, "kmf": true,
	"krw": true, "mga": true, "pyg": true, "rwf": true, "ugx": true, "vnd": true,
	"vuv": true, "xaf": true, "xof": true, "xpf": true,
}

// MinorUnitDigits is the number of decimal places of the currency's minor unit.
func MinorUnitDigits(currency string) int {
	if zeroDecimalCurrencies[strings.ToLower(currency)] {
		return 0
	}
	return 2
}

// FormatMinorUnits renders 1234 chf as "12.34 CHF".
func FormatMinorUnits(amount int64, currency string) string {
	code := strings.ToUpper(currency)
	digits := MinorUnitDigits(currency)
	if digits == 0 {
		return fmt.Sprintf("%d %s", amount, code)
	}

	sign := ""
	// uint64 keeps math.MinInt64 representable after negation.
	u := uint64(amount)
	if amount < 0 {
		sign = "-"
		u = uint64(-(amount + 1)) + 1
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, u/100, u%100, code)
}

type MoneyResponse struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Display  string `json:"display"`
}

func FromMoney(m entities.Money) MoneyResponse {
	return MoneyResponse{Amount: m.Amount, Currency: m.Currency, Display: FormatMinorUnits(m.Amount, m.Currency)}
}

func FromMoneyList(list []entities.Money) []MoneyResponse {
	out := make([]MoneyResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromMoney(m))
	}
	return out
}

type BalanceResponse struct {
	Available []MoneyResponse `json:"available"`
	Pending   []MoneyResponse `json:"pending"`
}

func FromBalance(b entities.BalanceSnapshot) BalanceResponse {
	return BalanceResponse{Available: FromMoneyList(b.Available), Pending: FromMoneyList(b.Pending)}
}

// BalanceRow is one currency line of the dashboard balance table.
type BalanceRow struct {
	Currency  string
	Available string
	Pending   string
}

// BalanceRows merges available and pending amounts per currency, in the
// order currencies first appear.
func BalanceRows(b entities.BalanceSnapshot) []BalanceRow {
	index := map[string]int{}
	var rows []BalanceRow
	row := func(currency string) *BalanceRow {
		i, ok := index[currency]
		if !ok {
			i = len(rows)
			index[currency] = i
			rows = append(rows, BalanceRow{
				Currency:  strings.ToUpper(currency),
				Available: FormatMinorUnits(0, currency),
				Pending:   FormatMinorUnits(0, currency),
			})
		}
		return &rows[i]
	}
	for _, m := range b.Available {
		row(m.Currency).Available = FormatMinorUnits(m.Amount, m.Currency)
	}
	for _, m := range b.Pending {
		row(m.Currency).Pending = FormatMinorUnits(m.Amount, m.Currency)
	}
	return rows
}
