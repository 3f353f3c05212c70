package ordering

import (
	"cmp"
	"fmt"
	"purchase-insights/internal/domain"
	"strings"
	"unicode/utf8"
)

// ReviewKey selects the review attribute used for ordering.
type ReviewKey string

const (
	ReviewKeyRating ReviewKey = "rating"
	ReviewKeyLength ReviewKey = "length"
)

// ParseReviewKey resolves a review key name.
func ParseReviewKey(s string) (ReviewKey, error) {
	switch k := ReviewKey(strings.ToLower(strings.TrimSpace(s))); k {
	case ReviewKeyRating, ReviewKeyLength:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

func (k ReviewKey) Name() string { return "review_" + string(k) }

// Compare orders reviews by rating, or by the number of characters in the text.
func (k ReviewKey) Compare(a, b domain.Review) int {
	switch k {
	case ReviewKeyRating:
		return cmp.Compare(a.Rating, b.Rating)
	case ReviewKeyLength:
		return cmp.Compare(utf8.RuneCountInString(a.Text), utf8.RuneCountInString(b.Text))
	default:
		return 0
	}
}

func (k ReviewKey) Scalar(r domain.Review) (float64, bool) {
	switch k {
	case ReviewKeyRating:
		return float64(r.Rating), true
	case ReviewKeyLength:
		return float64(utf8.RuneCountInString(r.Text)), true
	default:
		return 0, false
	}
}
