package entities

type PaymentMethod struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	CustomerID string `json:"customer_id,omitempty"`
	Brand      string `json:"brand,omitempty"`
	Last4      string `json:"last4,omitempty"`
	ExpMonth   int64  `json:"exp_month,omitempty"`
	ExpYear    int64  `json:"exp_year,omitempty"`
}
