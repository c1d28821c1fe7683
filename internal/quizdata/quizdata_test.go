package quizdata

import (
	"testing"

	"academy-api/internal/assessment"
)

func TestGrammarCatalog_Loads(t *testing.T) {
	cat := GrammarCatalog()
	if cat.Kind != assessment.KindCorrectness {
		t.Fatalf("expected correctness kind, got %s", cat.Kind)
	}
	if cat.TotalQuestions() != 12 {
		t.Fatalf("expected 12 questions, got %d", cat.TotalQuestions())
	}
	for _, q := range cat.Flatten() {
		if len(q.Options) != 4 {
			t.Fatalf("question %d: expected 4 options, got %d", q.ID, len(q.Options))
		}
	}
}

func TestLeadershipCatalog_PairedStylesHaveEnoughQuestions(t *testing.T) {
	cat := LeadershipCatalog()
	if cat.Kind != assessment.KindTrait {
		t.Fatalf("expected trait kind, got %s", cat.Kind)
	}

	counts := make(map[assessment.Trait]int)
	for _, q := range cat.Flatten() {
		counts[q.Trait]++
	}
	for _, pair := range assessment.OpposingPairs {
		minQ := cat.Params.PairMinQuestions
		if counts[pair.A] < minQ || counts[pair.B] < minQ {
			t.Fatalf("pair %s/%s below cancellation threshold: %d/%d",
				pair.A, pair.B, counts[pair.A], counts[pair.B])
		}
	}
	if counts[cat.Params.FallbackTrait] == 0 {
		t.Fatalf("fallback trait %s has no questions", cat.Params.FallbackTrait)
	}
}
