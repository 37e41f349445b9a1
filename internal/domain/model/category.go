package model

// Category is the closed set of intent buckets a user turn can classify into.
type Category string

const (
	CategoryGreetings Category = "greetings"
	CategorySadness   Category = "sadness"
	CategoryHappiness Category = "happiness"
	CategoryAnger     Category = "anger"
	CategoryBoredom   Category = "boredom"
	CategoryStress    Category = "stress"
	CategoryCalm      Category = "calm"
	CategoryConfusion Category = "confusion"
	CategoryThreats   Category = "threats"
	CategoryYesNo     Category = "yesNo"
	CategoryJokes     Category = "jokes"
	// CategoryUnknown and CategoryFallback are default paths only; they carry
	// replies but no keywords and are never returned by the classifier.
	CategoryUnknown  Category = "unknown"
	CategoryFallback Category = "fallback"
)

// AllCategories lists every category in declaration order. The order matters:
// the classifier scans keyword-bearing categories in exactly this order and
// the first match wins.
var AllCategories = []Category{
	CategoryGreetings,
	CategorySadness,
	CategoryHappiness,
	CategoryAnger,
	CategoryBoredom,
	CategoryStress,
	CategoryCalm,
	CategoryConfusion,
	CategoryThreats,
	CategoryYesNo,
	CategoryJokes,
	CategoryUnknown,
	CategoryFallback,
}

func (c Category) Valid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}
