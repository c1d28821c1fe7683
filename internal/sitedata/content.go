package sitedata

import "academy-api/internal/domain"

// Courses returns the static course list shown on the site.
func Courses() []domain.Course {
	return []domain.Course{
		{
			ID:          "business-english",
			Title:       "Business English",
			Level:       "Intermediate to Advanced",
			Duration:    "12 weeks",
			Description: "Meetings, negotiations, presentations and written communication for professionals.",
		},
		{
			ID:          "grammar-foundations",
			Title:       "Grammar Foundations",
			Level:       "Beginner to Intermediate",
			Duration:    "8 weeks",
			Description: "A structured pass through tenses, articles and sentence structure with weekly practice tests.",
		},
		{
			ID:          "leadership-communication",
			Title:       "Leadership Communication",
			Level:       "Advanced",
			Duration:    "10 weeks",
			Description: "Executive coaching on persuasive speaking, feedback conversations and cross-cultural teams.",
		},
		{
			ID:          "ielts-preparation",
			Title:       "IELTS Preparation",
			Level:       "All levels",
			Duration:    "6 weeks",
			Description: "Intensive exam preparation with mock tests and individual score feedback.",
		},
	}
}

// Openings returns the current careers-page vacancies.
func Openings() []domain.JobOpening {
	return []domain.JobOpening{
		{
			ID:          "senior-english-coach",
			Title:       "Senior English Coach",
			Location:    "Remote",
			Type:        "Full-time",
			Description: "Lead group courses and one-on-one coaching for corporate clients.",
		},
		{
			ID:          "content-writer",
			Title:       "Content Writer",
			Location:    "Remote",
			Type:        "Part-time",
			Description: "Write blog articles and course material on English learning and leadership.",
		},
	}
}
