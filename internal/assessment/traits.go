package assessment

import "sort"

// likertWeights maps a 1-5 Likert rating to its signed contribution.
var likertWeights = map[int]float64{
	1: -2,
	2: -1,
	3: 0,
	4: 1,
	5: 2,
}

// Confidence classifies how clearly the dominant style separates from the
// runner-up.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// TraitReport is the leadership-test result. Scores holds every trait the
// catalog references, defaulting to 0 for unanswered ones. Dominant and
// Secondary are always distinct.
type TraitReport struct {
	Scores     map[Trait]float64 `json:"scores"`
	Ranked     []Trait           `json:"ranked"`
	Dominant   Trait             `json:"dominant"`
	Secondary  Trait             `json:"secondary"`
	Confidence Confidence        `json:"confidence"`
}

// ScoreTraits aggregates Likert responses into per-style scores. The steps:
// signed weights, per-trait mean over all catalog questions of that trait
// (unanswered ones count in the denominator), opposing-pair cancellation,
// then dominant/secondary resolution with an ambiguity fallback. Pure and
// deterministic.
func ScoreTraits(catalog *Catalog, responses *ResponseStore) TraitReport {
	params := catalog.Params
	traits := catalog.Traits()

	raw := make(map[Trait]float64, len(traits))
	counts := make(map[Trait]int, len(traits))
	for _, t := range traits {
		raw[t] = 0
		counts[t] = 0
	}
	for _, q := range catalog.Flatten() {
		counts[q.Trait]++
		if v, ok := responses.Get(q.ID); ok {
			raw[q.Trait] += likertWeights[v]
		}
	}

	scores := make(map[Trait]float64, len(traits))
	for _, t := range traits {
		if counts[t] > 0 {
			scores[t] = raw[t] / float64(counts[t])
		} else {
			scores[t] = 0
		}
	}

	// Opposing styles cancel: only the net lean survives, the weaker side
	// drops to zero. Applies only when both sides have enough questions to
	// make the comparison meaningful.
	for _, pair := range OpposingPairs {
		_, hasA := scores[pair.A]
		_, hasB := scores[pair.B]
		if !hasA || !hasB {
			continue
		}
		if counts[pair.A] < params.PairMinQuestions || counts[pair.B] < params.PairMinQuestions {
			continue
		}
		diff := scores[pair.A] - scores[pair.B]
		if diff >= 0 {
			scores[pair.A] = diff
			scores[pair.B] = 0
		} else {
			scores[pair.A] = 0
			scores[pair.B] = -diff
		}
	}

	// Rank descending; ties keep catalog declaration order.
	ranked := make([]Trait, len(traits))
	copy(ranked, traits)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	report := TraitReport{
		Scores: scores,
		Ranked: ranked,
	}
	if len(ranked) == 0 {
		return report
	}
	report.Dominant = ranked[0]
	if len(ranked) == 1 {
		report.Confidence = ConfidenceHigh
		return report
	}
	report.Secondary = ranked[1]

	gap := scores[ranked[0]] - scores[ranked[1]]
	switch {
	case gap < params.AmbiguityThreshold:
		report.Confidence = ConfidenceLow
	case gap < 2*params.AmbiguityThreshold:
		report.Confidence = ConfidenceMedium
	default:
		report.Confidence = ConfidenceHigh
	}

	// Too close to call: report the adaptive style as dominant instead of
	// the numerical leader. The runner-up stays as measured.
	if gap < params.AmbiguityThreshold {
		report.Dominant = params.FallbackTrait
		if report.Secondary == report.Dominant {
			report.Secondary = ranked[0]
		}
	}

	return report
}
