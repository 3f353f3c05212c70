package usecase

import (
	"cmp"
	"purchase-insights/internal/collection"
	"purchase-insights/internal/domain"
	"purchase-insights/internal/ordering"
	"purchase-insights/internal/sorting"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// LowestRating is the rating whose vocabulary the review report ranks by default.
const LowestRating = 1

// rankOrder sorts by descending count, then by ascending token bytes.
var rankOrder = ordering.Func("word_rank", func(a, b domain.WordFrequency) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	return strings.Compare(a.Word, b.Word)
})

// Tokenize splits text on whitespace and normalises each token: the text is
// lower-cased first and then only letters and digits are kept, so marks added
// by case mapping are dropped too. Tokens that end up empty are discarded.
func Tokenize(text string) []string {
	lowered := norm.NFC.String(cases.Lower(language.Und).String(text))

	var tokens []string
	for _, field := range strings.Fields(lowered) {
		cleaned := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, field)
		if cleaned == "" {
			continue
		}
		tokens = append(tokens, cleaned)
	}
	return tokens
}

// RankWords counts the tokens of every review with the given rating and
// returns the full ranking, most frequent first. Equal counts are ordered by
// the token itself, byte-wise ascending.
func RankWords(reviews collection.Sequence[domain.Review], rating int) []domain.WordFrequency {
	counts := make(map[string]int)
	var seen []string
	for c := reviews.Front(); c.Valid(); c.Next() {
		review := c.Value()
		if review.Rating != rating {
			continue
		}
		for _, token := range Tokenize(review.Text) {
			if counts[token] == 0 {
				seen = append(seen, token)
			}
			counts[token]++
		}
	}

	ranking := collection.NewList(make([]domain.WordFrequency, 0, len(seen)))
	for _, word := range seen {
		ranking.Append(domain.WordFrequency{Word: word, Count: counts[word]})
	}
	// rankOrder is a total order on distinct words, so the algorithm choice
	// cannot change the result.
	sorting.Merge(ranking, rankOrder)
	return ranking.Items()
}
