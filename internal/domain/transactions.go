package domain

import "github.com/shopspring/decimal"

// PaymentMethodCreditCard is the payment label the share report targets by default.
const PaymentMethodCreditCard = "Credit Card"

// Transaction represents one purchase row from the transactions dataset.
type Transaction struct {
	CustomerID    string          `json:"customer_id"`
	Product       string          `json:"product"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price"`
	Date          Date            `json:"date"`
	PaymentMethod string          `json:"payment_method"`
}

// Review represents one row from the reviews dataset.
// Reviews reference transactions only through CustomerID.
type Review struct {
	ProductID  string `json:"product_id"`
	CustomerID string `json:"customer_id"`
	Rating     int    `json:"rating"` // Expected 1-5, not validated
	Text       string `json:"review"`
}
