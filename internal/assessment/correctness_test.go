package assessment

import (
	"reflect"
	"testing"
)

func TestScoreCorrectness_MixedAnswers(t *testing.T) {
	cat, err := NewCatalog("grammar", KindCorrectness, correctnessSections(), DefaultParams())
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	// Correct answers are options 0,1,2,3. Answer two right, one wrong,
	// leave the last one blank.
	responses := NewResponseStore()
	responses.Set(1, 0)
	responses.Set(2, 1)
	responses.Set(3, 0)

	report := ScoreCorrectness(cat, responses)
	if report.Correct != 2 || report.Attempted != 3 || report.Total != 4 {
		t.Fatalf("expected 2/3/4, got %d/%d/%d", report.Correct, report.Attempted, report.Total)
	}
	if report.Percentage != 50 {
		t.Fatalf("expected percentage 50, got %d", report.Percentage)
	}

	if len(report.Outcomes) != 4 {
		t.Fatalf("expected 4 outcomes, got %d", len(report.Outcomes))
	}
	third := report.Outcomes[2]
	if !third.WasAnswered || third.IsCorrect || third.Chosen != 0 || third.Correct != 2 {
		t.Fatalf("unexpected outcome for wrong answer: %+v", third)
	}
	last := report.Outcomes[3]
	if last.WasAnswered || last.IsCorrect || last.Chosen != -1 {
		t.Fatalf("unexpected outcome for blank answer: %+v", last)
	}
}

func TestScoreCorrectness_BoundsAndRounding(t *testing.T) {
	sections := []Section{{Name: "s", Questions: []Question{
		{ID: 1, Prompt: "a", Options: []string{"x", "y"}, CorrectOption: 0},
		{ID: 2, Prompt: "b", Options: []string{"x", "y"}, CorrectOption: 0},
		{ID: 3, Prompt: "c", Options: []string{"x", "y"}, CorrectOption: 0},
	}}}
	cat, err := NewCatalog("tiny", KindCorrectness, sections, DefaultParams())
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	responses := NewResponseStore()
	report := ScoreCorrectness(cat, responses)
	if report.Correct != 0 || report.Attempted != 0 || report.Percentage != 0 {
		t.Fatalf("empty store must score zero, got %+v", report)
	}

	// 1 of 3 correct rounds 33.33 down to 33; 2 of 3 rounds 66.67 up to 67.
	responses.Set(1, 0)
	if got := ScoreCorrectness(cat, responses).Percentage; got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
	responses.Set(2, 0)
	if got := ScoreCorrectness(cat, responses).Percentage; got != 67 {
		t.Fatalf("expected 67, got %d", got)
	}

	r := ScoreCorrectness(cat, responses)
	if !(0 <= r.Correct && r.Correct <= r.Attempted && r.Attempted <= r.Total) {
		t.Fatalf("bounds violated: %+v", r)
	}
}

func TestScoreCorrectness_Deterministic(t *testing.T) {
	cat, err := NewCatalog("grammar", KindCorrectness, correctnessSections(), DefaultParams())
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	responses := NewResponseStore()
	responses.Set(1, 0)
	responses.Set(4, 2)

	first := ScoreCorrectness(cat, responses)
	second := ScoreCorrectness(cat, responses)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated scoring diverged:\n%+v\n%+v", first, second)
	}
}
