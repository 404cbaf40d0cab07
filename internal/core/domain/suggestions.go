package domain

import (
	"sort"
	"strings"
	"unicode"
)

// SuggestionLimit is the maximum number of suggestion chips shown.
const SuggestionLimit = 7

// DefaultSuggestions returns the fixed fallback chips used while the
// search history is empty. Always exactly SuggestionLimit entries.
func DefaultSuggestions() []string {
	return []string{"鶏肉", "豚肉", "玉ねぎ", "じゃがいも", "にんじん", "キャベツ", "卵"}
}

// isIngredientSeparator matches the delimiters users mix freely in the
// ingredients field: ASCII comma, Japanese comma, and any whitespace.
func isIngredientSeparator(r rune) bool {
	return r == ',' || r == '、' || unicode.IsSpace(r)
}

// SuggestedIngredients derives the suggestion chips from search history:
// every historical query's ingredient string is tokenized, tokens are
// counted across all of history, and the SuggestionLimit most frequent
// are returned in descending count order. Ties keep first-encounter
// order. With no history at all it falls back to DefaultSuggestions.
func SuggestedIngredients(history []*HistoryItem) []string {
	counts := make(map[string]int)
	var order []string

	for _, item := range history {
		for _, token := range strings.FieldsFunc(item.Query.Ingredients, isIngredientSeparator) {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			if _, seen := counts[token]; !seen {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	if len(order) == 0 {
		return DefaultSuggestions()
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > SuggestionLimit {
		order = order[:SuggestionLimit]
	}
	return order
}

// AppendIngredient appends a suggestion chip to the ingredients field,
// joining with a full-width comma when the field already has content.
func AppendIngredient(field, ingredient string) string {
	field = strings.TrimSpace(field)
	if field == "" {
		return ingredient
	}
	return field + "、" + ingredient
}
