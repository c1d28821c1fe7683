package assessment

// ResponseStore is the session-scoped partial mapping of question id to the
// chosen value. For correctness catalogs the value is an option index; for
// trait catalogs it is a Likert rating in [1,5]. Not goroutine-safe: it is
// owned by a single session and serialized by the session registry.
type ResponseStore struct {
	values map[int]int
}

// NewResponseStore returns an empty store.
func NewResponseStore() *ResponseStore {
	return &ResponseStore{values: make(map[int]int)}
}

// Set inserts or overwrites the response for a question. Values are not
// checked against the question here; the catalog-aware session layer is the
// gatekeeper for question ids.
func (s *ResponseStore) Set(questionID, value int) {
	s.values[questionID] = value
}

// Clear removes the response if present. Clearing an unanswered question is
// a no-op.
func (s *ResponseStore) Clear(questionID int) {
	delete(s.values, questionID)
}

// Get returns the stored value and whether the question was answered.
func (s *ResponseStore) Get(questionID int) (int, bool) {
	v, ok := s.values[questionID]
	return v, ok
}

// AnsweredCount reports how many questions have a stored response.
func (s *ResponseStore) AnsweredCount() int {
	return len(s.values)
}
