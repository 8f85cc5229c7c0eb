package entities

// Money is an amount in the currency's smallest unit (e.g. cents).
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// BalanceSnapshot is a read-only, point-in-time view of the account balance.
type BalanceSnapshot struct {
	Available []Money `json:"available"`
	Pending   []Money `json:"pending"`
}
