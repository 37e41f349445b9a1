package lexicon

import (
	"strings"
	"testing"

	"happybot/internal/domain/model"
)

func TestClassifySingleCategory(t *testing.T) {
	cases := []struct {
		in   string
		want model.Category
	}{
		{"hi", model.CategoryGreetings},
		{"i feel so lonely tonight", model.CategorySadness},
		{"i am excited about tomorrow", model.CategoryHappiness},
		{"that makes me furious", model.CategoryAnger},
		{"i am so bored today", model.CategoryBoredom},
		{"too much panic at work", model.CategoryStress},
		{"feeling relaxed right now", model.CategoryCalm},
		{"huh", model.CategoryConfusion},
		{"yep", model.CategoryYesNo},
		{"tell me something funny", model.CategoryJokes},
	}
	for _, tc := range cases {
		got, ok := Classify(Normalize(tc.in))
		if !ok || got != tc.want {
			t.Errorf("Classify(%q) = (%v,%v), want %v", tc.in, got, ok, tc.want)
		}
	}
}

func TestClassifyNoMatch(t *testing.T) {
	if cat, matched := Classify(Normalize("zzz qqq")); matched {
		t.Fatalf("expected no category, got %v", cat)
	}
}

// Declaration order is a contract: when keywords from multiple categories
// co-occur, the first category in scan order wins.
func TestClassifyDeclarationOrderTieBreak(t *testing.T) {
	// "sad" (sadness) + "bored" (boredom): sadness is declared earlier.
	got, _ := Classify("i am sad and bored")
	if got != model.CategorySadness {
		t.Fatalf("tie-break: got %v, want sadness", got)
	}
	// "hi" (greetings) matches before anything else, even as a substring of
	// later input tokens.
	got, _ = Classify("hi i am angry")
	if got != model.CategoryGreetings {
		t.Fatalf("tie-break: got %v, want greetings", got)
	}
}

func TestClassifyThreatPrecedence(t *testing.T) {
	// "hate you" is a threat trigger even though "hate" alone is anger and
	// anger is declared earlier in scan order.
	got, ok := Classify(Normalize("I really hate you!!"))
	if !ok || got != model.CategoryThreats {
		t.Fatalf("Classify = (%v,%v), want threats", got, ok)
	}
	// Threats win over any co-occurring keyword.
	got, _ = Classify(Normalize("hello, I will kill it"))
	if got != model.CategoryThreats {
		t.Fatalf("Classify = %v, want threats", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	in := Normalize("I am so bored and tired")
	first, _ := Classify(in)
	for i := 0; i < 50; i++ {
		if got, _ := Classify(in); got != first {
			t.Fatalf("classification unstable: %v vs %v", got, first)
		}
	}
}

// The keyword and response tables must cover exactly the same closed tag set:
// every category has replies, and every category except the two catch-alls
// has keywords.
func TestTableCoverage(t *testing.T) {
	for _, cat := range model.AllCategories {
		if len(Responses(cat)) == 0 {
			t.Errorf("category %v has no responses", cat)
		}
		kws := Keywords(cat)
		switch cat {
		case model.CategoryUnknown, model.CategoryFallback:
			if len(kws) != 0 {
				t.Errorf("catch-all %v must not have keywords", cat)
			}
		default:
			if len(kws) == 0 {
				t.Errorf("category %v has no keywords", cat)
			}
		}
	}
	for cat := range keywords {
		if !cat.Valid() {
			t.Errorf("keyword table has unknown category %v", cat)
		}
	}
	for cat := range responses {
		if !cat.Valid() {
			t.Errorf("response table has unknown category %v", cat)
		}
	}
}

func TestKeywordsAreNormalized(t *testing.T) {
	for cat, kws := range keywords {
		for _, kw := range kws {
			if kw != Normalize(kw) {
				t.Errorf("%v keyword %q is not in normalized form", cat, kw)
			}
		}
	}
}

func TestThreatReplyIsFixed(t *testing.T) {
	if ThreatReply() != "Let's stay safe — I'm here to help." {
		t.Fatalf("unexpected threat reply %q", ThreatReply())
	}
	if !strings.Contains(ThreatReply(), "safe") {
		t.Fatal("threat reply should be the de-escalation message")
	}
}
