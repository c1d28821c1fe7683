package assessment

import (
	"errors"
	"fmt"
)

// Kind selects the scoring strategy a catalog uses.
type Kind string

const (
	// KindCorrectness grades each answer against a known-correct option.
	KindCorrectness Kind = "correctness"
	// KindTrait aggregates Likert responses into per-style scores.
	KindTrait Kind = "trait"
)

var (
	ErrCatalogInvalid  = errors.New("catalog invalid")
	ErrUnknownQuestion = errors.New("unknown question")
)

// Question is one catalog entry. Correctness questions carry Options and
// CorrectOption (an explicit index, never derived from option letters);
// trait questions carry exactly one Trait tag and are answered on a 1-5
// Likert scale.
type Question struct {
	ID            int      `json:"id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	CorrectOption int      `json:"-"`
	Trait         Trait    `json:"-"`
}

// Section groups consecutive questions under a display name.
type Section struct {
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Params carries the tunable scoring constants. They have no documented
// derivation upstream, so they stay configurable rather than hard-coded.
type Params struct {
	// AmbiguityThreshold is the minimum gap between the top two trait
	// scores for the leader to count as dominant.
	AmbiguityThreshold float64
	// PairMinQuestions is how many questions each side of an opposing
	// pair needs before cancellation applies.
	PairMinQuestions int
	// FallbackTrait is reported as dominant when the top two are too
	// close to call.
	FallbackTrait Trait
}

// DefaultParams returns the production scoring constants.
func DefaultParams() Params {
	return Params{
		AmbiguityThreshold: 0.3,
		PairMinQuestions:   2,
		FallbackTrait:      TraitSituational,
	}
}

// Catalog is the full static question set for one assessment. It is
// immutable after construction and safe for concurrent readers.
type Catalog struct {
	Name     string
	Kind     Kind
	Sections []Section
	Params   Params

	flat []Question
	ids  map[int]struct{}
}

// NewCatalog validates the section list and builds the flattened question
// sequence. Validation is fail-fast: a broken catalog must never reach
// navigation or scoring.
func NewCatalog(name string, kind Kind, sections []Section, params Params) (*Catalog, error) {
	if kind != KindCorrectness && kind != KindTrait {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrCatalogInvalid, kind)
	}
	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: no sections", ErrCatalogInvalid)
	}
	if params.PairMinQuestions <= 0 {
		params.PairMinQuestions = DefaultParams().PairMinQuestions
	}
	if params.AmbiguityThreshold < 0 {
		params.AmbiguityThreshold = DefaultParams().AmbiguityThreshold
	}
	if params.FallbackTrait == "" {
		params.FallbackTrait = DefaultParams().FallbackTrait
	}

	c := &Catalog{
		Name:     name,
		Kind:     kind,
		Sections: sections,
		Params:   params,
		ids:      make(map[int]struct{}),
	}

	for _, sec := range sections {
		if len(sec.Questions) == 0 {
			return nil, fmt.Errorf("%w: section %q has no questions", ErrCatalogInvalid, sec.Name)
		}
		for _, q := range sec.Questions {
			if q.ID <= 0 {
				return nil, fmt.Errorf("%w: question id %d must be positive", ErrCatalogInvalid, q.ID)
			}
			if _, dup := c.ids[q.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate question id %d", ErrCatalogInvalid, q.ID)
			}
			switch kind {
			case KindCorrectness:
				if len(q.Options) < 2 {
					return nil, fmt.Errorf("%w: question %d needs at least 2 options", ErrCatalogInvalid, q.ID)
				}
				if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
					return nil, fmt.Errorf("%w: question %d correct option %d out of range", ErrCatalogInvalid, q.ID, q.CorrectOption)
				}
			case KindTrait:
				if !validTrait(q.Trait) {
					return nil, fmt.Errorf("%w: question %d has unknown trait %q", ErrCatalogInvalid, q.ID, q.Trait)
				}
			}
			c.ids[q.ID] = struct{}{}
			c.flat = append(c.flat, q)
		}
	}

	if kind == KindTrait {
		// The ambiguity fallback must be scoreable, so the catalog has to
		// reference it.
		found := false
		for _, q := range c.flat {
			if q.Trait == params.FallbackTrait {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: fallback trait %q not present in catalog", ErrCatalogInvalid, params.FallbackTrait)
		}
	}

	return c, nil
}

// MustLoad panics when the catalog cannot be built. Intended for the static
// production catalogs wired at startup.
func MustLoad(c *Catalog, err error) *Catalog {
	if err != nil {
		panic(err)
	}
	return c
}

// Flatten returns the questions in section order then in-section order.
// Callers must not mutate the returned slice.
func (c *Catalog) Flatten() []Question {
	return c.flat
}

// TotalQuestions reports the flattened sequence length.
func (c *Catalog) TotalQuestions() int {
	return len(c.flat)
}

// HasQuestion reports whether id exists anywhere in the catalog.
func (c *Catalog) HasQuestion(id int) bool {
	_, ok := c.ids[id]
	return ok
}

// QuestionAt returns the question at the flattened index.
func (c *Catalog) QuestionAt(index int) (Question, bool) {
	if index < 0 || index >= len(c.flat) {
		return Question{}, false
	}
	return c.flat[index], true
}

// Traits returns every trait tag referenced by the catalog, in fixed
// declaration order.
func (c *Catalog) Traits() []Trait {
	if c.Kind != KindTrait {
		return nil
	}
	present := make(map[Trait]bool)
	for _, q := range c.flat {
		present[q.Trait] = true
	}
	var out []Trait
	for _, t := range allTraits {
		if present[t] {
			out = append(out, t)
		}
	}
	return out
}
