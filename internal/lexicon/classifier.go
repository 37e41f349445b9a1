// File: internal/lexicon/classifier.go
package lexicon

import (
	"strings"

	"happybot/internal/domain/model"
)

// scanOrder is the classifier's category priority. Threats are excluded here
// because they are checked first and authoritatively by IsThreat; for the rest
// the first category whose keyword matches wins, a deliberate plain substring
// search rather than ranked scoring.
var scanOrder = []model.Category{
	model.CategoryGreetings,
	model.CategorySadness,
	model.CategoryHappiness,
	model.CategoryAnger,
	model.CategoryBoredom,
	model.CategoryStress,
	model.CategoryCalm,
	model.CategoryConfusion,
	model.CategoryYesNo,
	model.CategoryJokes,
}

// IsThreat reports whether normalized text contains any threat trigger.
func IsThreat(norm string) bool {
	for _, kw := range keywords[model.CategoryThreats] {
		if strings.Contains(norm, kw) {
			return true
		}
	}
	return false
}

// Classify returns the first category whose keyword list contains a substring
// of the normalized text. Threats take precedence over everything else.
// Deterministic: identical input always yields the identical category.
func Classify(norm string) (model.Category, bool) {
	if IsThreat(norm) {
		return model.CategoryThreats, true
	}
	for _, cat := range scanOrder {
		for _, kw := range keywords[cat] {
			if strings.Contains(norm, kw) {
				return cat, true
			}
		}
	}
	return "", false
}
