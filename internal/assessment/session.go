package assessment

import "fmt"

// Result wraps the scorer output matching the catalog's kind. Exactly one
// of the two reports is set.
type Result struct {
	Kind        Kind               `json:"kind"`
	Correctness *CorrectnessReport `json:"correctness,omitempty"`
	Traits      *TraitReport       `json:"traits,omitempty"`
}

// Session is one active assessment: the catalog reference plus the mutable
// response store and navigator. Sessions are single-user bundles; callers
// must serialize access (the service registry does).
type Session struct {
	ID        string
	Catalog   *Catalog
	Responses *ResponseStore
	Nav       *Navigator

	result *Result
}

// Snapshot is the presentation-layer view of a session.
type Snapshot struct {
	SessionID  string `json:"session_id"`
	Phase      Phase  `json:"phase"`
	Index      int    `json:"index"`
	Total      int    `json:"total"`
	Answered   int    `json:"answered"`
	Unanswered int    `json:"unanswered"`
}

// StartAssessment builds a fresh session for a validated catalog.
func StartAssessment(id string, catalog *Catalog) *Session {
	return &Session{
		ID:        id,
		Catalog:   catalog,
		Responses: NewResponseStore(),
		Nav:       NewNavigator(catalog.TotalQuestions()),
	}
}

// RecordAnswer stores a response. The value itself is trusted (the UI only
// offers valid choices) but the question must exist in the catalog.
func (s *Session) RecordAnswer(questionID, value int) error {
	if !s.Catalog.HasQuestion(questionID) {
		return fmt.Errorf("%w: id %d", ErrUnknownQuestion, questionID)
	}
	s.Responses.Set(questionID, value)
	return nil
}

// ClearAnswer removes a response; clearing an unanswered question is a
// no-op, but the question must exist.
func (s *Session) ClearAnswer(questionID int) error {
	if !s.Catalog.HasQuestion(questionID) {
		return fmt.Errorf("%w: id %d", ErrUnknownQuestion, questionID)
	}
	s.Responses.Clear(questionID)
	return nil
}

// Advance moves next or previous through the question sequence.
func (s *Session) Advance(forward bool) {
	if forward {
		s.Nav.Next()
	} else {
		s.Nav.Previous()
	}
}

// ForceReview jumps to the review screen from any question.
func (s *Session) ForceReview() { s.Nav.ForceReview() }

// BackToAnswering returns from review to the last question.
func (s *Session) BackToAnswering() { s.Nav.BackToAnswering() }

// Submit finalizes the assessment. Scoring runs exactly once per submit;
// repeated calls return the cached result. Submitting outside the review
// phase reports false.
func (s *Session) Submit() (*Result, bool) {
	if s.result != nil {
		return s.result, true
	}
	if !s.Nav.Submit() {
		return nil, false
	}
	s.result = s.finalize()
	return s.result, true
}

// Result returns the computed result, or nil before submit.
func (s *Session) Result() *Result { return s.result }

// Retry discards all responses and any result and restarts at the first
// question.
func (s *Session) Retry() {
	s.Responses = NewResponseStore()
	s.Nav.Retry()
	s.result = nil
}

// Snapshot summarizes the session for rendering.
func (s *Session) Snapshot() Snapshot {
	answered := s.Responses.AnsweredCount()
	return Snapshot{
		SessionID:  s.ID,
		Phase:      s.Nav.Phase(),
		Index:      s.Nav.Index(),
		Total:      s.Catalog.TotalQuestions(),
		Answered:   answered,
		Unanswered: s.Catalog.TotalQuestions() - answered,
	}
}

// CurrentQuestion returns the question under the cursor while answering.
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.Nav.Phase() != PhaseAnswering {
		return Question{}, false
	}
	return s.Catalog.QuestionAt(s.Nav.Index())
}

func (s *Session) finalize() *Result {
	switch s.Catalog.Kind {
	case KindTrait:
		r := ScoreTraits(s.Catalog, s.Responses)
		return &Result{Kind: KindTrait, Traits: &r}
	default:
		r := ScoreCorrectness(s.Catalog, s.Responses)
		return &Result{Kind: KindCorrectness, Correctness: &r}
	}
}
