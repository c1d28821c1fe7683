package assessment

import "math"

// QuestionOutcome is the per-question grading detail the review screen
// renders with correct/incorrect markers.
type QuestionOutcome struct {
	QuestionID  int  `json:"question_id"`
	WasAnswered bool `json:"was_answered"`
	IsCorrect   bool `json:"is_correct"`
	Chosen      int  `json:"chosen"`
	Correct     int  `json:"correct"`
}

// CorrectnessReport is the grammar-test result. Invariant:
// 0 <= Correct <= Attempted <= Total.
type CorrectnessReport struct {
	Correct    int               `json:"correct"`
	Attempted  int               `json:"attempted"`
	Total      int               `json:"total"`
	Percentage int               `json:"percentage"`
	Outcomes   []QuestionOutcome `json:"outcomes"`
}

// ScoreCorrectness grades a correctness catalog against a response snapshot.
// Pure and deterministic: repeated calls with the same inputs yield
// identical reports.
func ScoreCorrectness(catalog *Catalog, responses *ResponseStore) CorrectnessReport {
	report := CorrectnessReport{}
	for _, q := range catalog.Flatten() {
		report.Total++
		outcome := QuestionOutcome{
			QuestionID: q.ID,
			Chosen:     -1,
			Correct:    q.CorrectOption,
		}
		if chosen, ok := responses.Get(q.ID); ok {
			report.Attempted++
			outcome.WasAnswered = true
			outcome.Chosen = chosen
			if chosen == q.CorrectOption {
				report.Correct++
				outcome.IsCorrect = true
			}
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}
	if report.Total > 0 {
		report.Percentage = int(math.Round(100 * float64(report.Correct) / float64(report.Total)))
	}
	return report
}
