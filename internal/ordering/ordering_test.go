package ordering

import (
	"purchase-insights/internal/domain"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey_Compare(t *testing.T) {
	a := domain.Transaction{
		Category:      "Books",
		Price:         decimal.RequireFromString("9.99"),
		Date:          domain.MustParseDate("9/01/2024"),
		PaymentMethod: "Cash",
	}
	b := domain.Transaction{
		Category:      "books",
		Price:         decimal.RequireFromString("10.00"),
		Date:          domain.MustParseDate("10/01/2024"),
		PaymentMethod: "Credit Card",
	}

	tests := []struct {
		key  Key
		want int
	}{
		{key: KeyDate, want: -1},
		{key: KeyCategory, want: -1}, // "B" < "b": case-sensitive
		{key: KeyPrice, want: -1},    // numeric, not lexical
		{key: KeyPaymentMethod, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.key.Name(), func(t *testing.T) {
			assert.Equal(t, tt.want, sign(tt.key.Compare(a, b)))
			assert.Equal(t, -tt.want, sign(tt.key.Compare(b, a)))
			assert.Equal(t, 0, tt.key.Compare(a, a))
		})
	}
}

func TestKey_Scalar(t *testing.T) {
	tx := domain.Transaction{
		Category: "Books",
		Price:    decimal.RequireFromString("12.50"),
		Date:     domain.MustParseDate("02/03/2024"),
	}

	v, ok := KeyDate.Scalar(tx)
	assert.True(t, ok)
	assert.Equal(t, float64(20240302), v)

	v, ok = KeyPrice.Scalar(tx)
	assert.True(t, ok)
	assert.InDelta(t, 12.5, v, 1e-9)

	_, ok = KeyCategory.Scalar(tx)
	assert.False(t, ok)
	_, ok = KeyPaymentMethod.Scalar(tx)
	assert.False(t, ok)
}

func TestKey_Target(t *testing.T) {
	tx, err := KeyDate.Target("05/06/2024")
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseDate("05/06/2024"), tx.Date)

	tx, err = KeyPrice.Target(" 19.90 ")
	require.NoError(t, err)
	assert.True(t, tx.Price.Equal(decimal.RequireFromString("19.9")))

	tx, err = KeyCategory.Target("Electronics")
	require.NoError(t, err)
	assert.Equal(t, "Electronics", tx.Category)

	_, err = KeyDate.Target("2024-06-05")
	assert.ErrorIs(t, err, domain.ErrMalformedDate)

	_, err = KeyPrice.Target("cheap")
	assert.Error(t, err)

	_, err = Key("colour").Target("red")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey(" Category ")
	require.NoError(t, err)
	assert.Equal(t, KeyCategory, k)

	_, err = ParseKey("rating")
	assert.ErrorIs(t, err, ErrUnknownKey)

	rk, err := ParseReviewKey("LENGTH")
	require.NoError(t, err)
	assert.Equal(t, ReviewKeyLength, rk)

	_, err = ParseReviewKey("date")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestReviewKey_Compare(t *testing.T) {
	short := domain.Review{Rating: 5, Text: "ok"}
	long := domain.Review{Rating: 1, Text: "très mauvais"}

	assert.Negative(t, ReviewKeyLength.Compare(short, long))
	assert.Positive(t, ReviewKeyRating.Compare(short, long))

	n, ok := ReviewKeyLength.Scalar(long)
	assert.True(t, ok)
	assert.Equal(t, float64(12), n, "length counts characters, not bytes")
}

func TestReverse(t *testing.T) {
	asc := Func("int", func(a, b int) int { return a - b })
	desc := Reverse(asc)

	assert.Equal(t, "-int", desc.Name())
	assert.Positive(t, desc.Compare(1, 2))
	assert.Negative(t, desc.Compare(2, 1))
	assert.Zero(t, desc.Compare(3, 3))
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
