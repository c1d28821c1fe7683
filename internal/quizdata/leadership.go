package quizdata

import "academy-api/internal/assessment"

// LeadershipCatalog is the leadership-style self-assessment. Statements are
// rated on a 1-5 agreement scale; each statement feeds exactly one style.
// Every style in an opposing pair carries at least two statements so the
// cancellation step stays active.
func LeadershipCatalog() *assessment.Catalog {
	return assessment.MustLoad(assessment.NewCatalog(
		"leadership",
		assessment.KindTrait,
		leadershipSections(),
		assessment.DefaultParams(),
	))
}

func leadershipSections() []assessment.Section {
	return []assessment.Section{
		{
			Name: "Decision Making",
			Questions: []assessment.Question{
				{ID: 101, Prompt: "I make the final call myself, even when the team disagrees.", Trait: assessment.TraitAutocratic},
				{ID: 102, Prompt: "I expect my instructions to be followed without much debate.", Trait: assessment.TraitAutocratic},
				{ID: 103, Prompt: "I put important decisions to a team vote whenever possible.", Trait: assessment.TraitDemocratic},
				{ID: 104, Prompt: "I rarely decide anything significant without hearing every opinion.", Trait: assessment.TraitDemocratic},
				{ID: 105, Prompt: "I adjust how decisions get made depending on the situation at hand.", Trait: assessment.TraitSituational},
			},
		},
		{
			Name: "Motivation",
			Questions: []assessment.Question{
				{ID: 106, Prompt: "Clear rewards and consequences are the best way to keep people performing.", Trait: assessment.TraitTransactional},
				{ID: 107, Prompt: "I track individual targets closely and tie recognition to hitting them.", Trait: assessment.TraitTransactional},
				{ID: 108, Prompt: "I motivate people by connecting their work to a larger purpose.", Trait: assessment.TraitTransformational},
				{ID: 109, Prompt: "I spend real time inspiring the team about what we could become.", Trait: assessment.TraitTransformational},
				{ID: 110, Prompt: "What motivates one person rarely motivates another, so I switch approaches.", Trait: assessment.TraitSituational},
			},
		},
		{
			Name: "Process & Vision",
			Questions: []assessment.Question{
				{ID: 111, Prompt: "Established procedures exist for a reason and should be followed precisely.", Trait: assessment.TraitBureaucratic},
				{ID: 112, Prompt: "I am uncomfortable when the team improvises outside documented process.", Trait: assessment.TraitBureaucratic},
				{ID: 113, Prompt: "I would rather paint the destination and let the team find the road.", Trait: assessment.TraitVisionary},
				{ID: 114, Prompt: "People describe me as the one always talking about where we will be in five years.", Trait: assessment.TraitVisionary},
			},
		},
		{
			Name: "Team Development",
			Questions: []assessment.Question{
				{ID: 115, Prompt: "Capable people do their best work when I stay out of the way.", Trait: assessment.TraitLaissezFaire},
				{ID: 116, Prompt: "I give the team full autonomy and only step in when asked.", Trait: assessment.TraitLaissezFaire},
				{ID: 117, Prompt: "I schedule regular one-on-ones focused on each person's growth.", Trait: assessment.TraitCoaching},
				{ID: 118, Prompt: "Developing someone's skills matters more to me than this quarter's output.", Trait: assessment.TraitCoaching},
				{ID: 119, Prompt: "My first question in planning is what the team needs, not what I need.", Trait: assessment.TraitServant},
				{ID: 120, Prompt: "I measure my success by how well the people around me are doing.", Trait: assessment.TraitServant},
			},
		},
	}
}
