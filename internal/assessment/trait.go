package assessment

// Trait identifies one leadership style measured by the trait-variant
// assessment. The set is closed: catalogs may only reference these values.
type Trait string

const (
	TraitAutocratic       Trait = "autocratic"
	TraitDemocratic       Trait = "democratic"
	TraitTransactional    Trait = "transactional"
	TraitTransformational Trait = "transformational"
	TraitBureaucratic     Trait = "bureaucratic"
	TraitVisionary        Trait = "visionary"
	TraitLaissezFaire     Trait = "laissez_faire"
	TraitCoaching         Trait = "coaching"
	TraitServant          Trait = "servant"
	TraitSituational      Trait = "situational"
)

// allTraits fixes the declaration order used for stable tie-breaking.
var allTraits = []Trait{
	TraitAutocratic,
	TraitDemocratic,
	TraitTransactional,
	TraitTransformational,
	TraitBureaucratic,
	TraitVisionary,
	TraitLaissezFaire,
	TraitCoaching,
	TraitServant,
	TraitSituational,
}

// TraitPair links two styles considered behavioral opposites. When responses
// lean both ways only the net difference survives scoring.
type TraitPair struct {
	A Trait
	B Trait
}

// OpposingPairs lists the style pairs subject to score cancellation.
var OpposingPairs = []TraitPair{
	{TraitAutocratic, TraitDemocratic},
	{TraitTransactional, TraitTransformational},
	{TraitBureaucratic, TraitVisionary},
	{TraitLaissezFaire, TraitCoaching},
}

func validTrait(t Trait) bool {
	for _, known := range allTraits {
		if known == t {
			return true
		}
	}
	return false
}
