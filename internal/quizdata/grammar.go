package quizdata

import "academy-api/internal/assessment"

// GrammarCatalog is the placement-style grammar test embedded on the site.
func GrammarCatalog() *assessment.Catalog {
	return assessment.MustLoad(assessment.NewCatalog(
		"grammar",
		assessment.KindCorrectness,
		grammarSections(),
		assessment.DefaultParams(),
	))
}

func grammarSections() []assessment.Section {
	return []assessment.Section{
		{
			Name: "Tenses",
			Questions: []assessment.Question{
				{
					ID:            1,
					Prompt:        "By the time the meeting started, we ___ the report.",
					Options:       []string{"finished", "had finished", "have finished", "were finishing"},
					CorrectOption: 1,
				},
				{
					ID:            2,
					Prompt:        "She ___ in Madrid for five years before moving to London.",
					Options:       []string{"lives", "is living", "had lived", "has lived"},
					CorrectOption: 2,
				},
				{
					ID:            3,
					Prompt:        "I ___ to the gym every morning before work.",
					Options:       []string{"go", "am going", "have gone", "went"},
					CorrectOption: 0,
				},
				{
					ID:            4,
					Prompt:        "Look at those clouds — it ___ rain.",
					Options:       []string{"will", "is going to", "shall", "would"},
					CorrectOption: 1,
				},
			},
		},
		{
			Name: "Prepositions & Articles",
			Questions: []assessment.Question{
				{
					ID:            5,
					Prompt:        "The results depend ___ how quickly we respond.",
					Options:       []string{"of", "from", "on", "in"},
					CorrectOption: 2,
				},
				{
					ID:            6,
					Prompt:        "She is ___ best negotiator on the team.",
					Options:       []string{"a", "an", "the", "no article"},
					CorrectOption: 2,
				},
				{
					ID:            7,
					Prompt:        "He apologized ___ arriving late to the interview.",
					Options:       []string{"for", "about", "of", "on"},
					CorrectOption: 0,
				},
				{
					ID:            8,
					Prompt:        "We need ___ information before making a decision.",
					Options:       []string{"a", "an", "the", "no article"},
					CorrectOption: 3,
				},
			},
		},
		{
			Name: "Sentence Structure",
			Questions: []assessment.Question{
				{
					ID:            9,
					Prompt:        "Neither the manager nor the employees ___ aware of the change.",
					Options:       []string{"was", "were", "is", "be"},
					CorrectOption: 1,
				},
				{
					ID:            10,
					Prompt:        "Choose the correct sentence:",
					Options: []string{
						"Despite of the rain, we went out.",
						"Despite the rain, we went out.",
						"Despite it was raining, we went out.",
						"Despite to the rain, we went out.",
					},
					CorrectOption: 1,
				},
				{
					ID:            11,
					Prompt:        "If I ___ more time, I would take the advanced course.",
					Options:       []string{"have", "had", "would have", "will have"},
					CorrectOption: 1,
				},
				{
					ID:            12,
					Prompt:        "The proposal, ___ was submitted last week, is under review.",
					Options:       []string{"that", "who", "which", "what"},
					CorrectOption: 2,
				},
			},
		},
	}
}
