package domain

// Course is one entry on the courses page.
type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Level       string `json:"level"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// JobOpening is one entry on the careers page.
type JobOpening struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
}
