package ordering

import (
	"cmp"
	"fmt"
	"purchase-insights/internal/domain"
	"strings"

	"github.com/shopspring/decimal"
)

// Key selects the transaction attribute used for ordering.
type Key string

const (
	KeyDate          Key = "date"
	KeyCategory      Key = "category"
	KeyPrice         Key = "price"
	KeyPaymentMethod Key = "payment_method"
)

// Keys lists every supported transaction key.
var Keys = []Key{KeyDate, KeyCategory, KeyPrice, KeyPaymentMethod}

// ParseKey resolves a key name, ignoring case and surrounding spaces.
func ParseKey(s string) (Key, error) {
	k := Key(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Keys {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

func (k Key) Name() string { return string(k) }

// Compare orders two transactions by the key. Dates compare by their integer
// encoding, strings compare byte-wise and case-sensitively, prices numerically.
func (k Key) Compare(a, b domain.Transaction) int {
	switch k {
	case KeyDate:
		return cmp.Compare(a.Date, b.Date)
	case KeyCategory:
		return strings.Compare(a.Category, b.Category)
	case KeyPrice:
		return a.Price.Cmp(b.Price)
	case KeyPaymentMethod:
		return strings.Compare(a.PaymentMethod, b.PaymentMethod)
	default:
		return 0
	}
}

// Scalar projects the key onto a number. Only date and price are numeric.
func (k Key) Scalar(tx domain.Transaction) (float64, bool) {
	switch k {
	case KeyDate:
		return float64(tx.Date), true
	case KeyPrice:
		return tx.Price.InexactFloat64(), true
	default:
		return 0, false
	}
}

// Target builds a probe transaction carrying only the searched attribute,
// parsed from its textual form.
func (k Key) Target(value string) (domain.Transaction, error) {
	var tx domain.Transaction
	switch k {
	case KeyDate:
		d, err := domain.ParseDate(value)
		if err != nil {
			return tx, err
		}
		tx.Date = d
	case KeyCategory:
		tx.Category = value
	case KeyPrice:
		p, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return tx, fmt.Errorf("could not parse price '%s': %w", value, err)
		}
		tx.Price = p
	case KeyPaymentMethod:
		tx.PaymentMethod = value
	default:
		return tx, fmt.Errorf("%w: %q", ErrUnknownKey, string(k))
	}
	return tx, nil
}
