package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"academy-api/internal/assessment"
)

var (
	ErrSessionNotFound = errors.New("assessment session not found")
	ErrUnknownCatalog  = errors.New("unknown assessment catalog")
)

// AssessmentService holds the active quiz sessions keyed by id. Each
// session is an isolated state bundle; the mutex serializes all access so
// the core stays single-threaded per session (the scorers themselves are
// pure and need no protection).
type AssessmentService struct {
	logger   *zap.Logger
	catalogs map[string]*assessment.Catalog
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	session  *assessment.Session
	lastSeen time.Time
}

func NewAssessmentService(logger *zap.Logger, catalogs map[string]*assessment.Catalog, ttl time.Duration) *AssessmentService {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &AssessmentService{
		logger:   logger,
		catalogs: catalogs,
		ttl:      ttl,
		sessions: make(map[string]*sessionEntry),
	}
}

// CatalogNames lists the assessments this instance serves.
func (s *AssessmentService) CatalogNames() []string {
	names := make([]string, 0, len(s.catalogs))
	for name := range s.catalogs {
		names = append(names, name)
	}
	return names
}

// Start creates a session for the named catalog and returns it.
func (s *AssessmentService) Start(catalogName string) (*assessment.Session, error) {
	catalog, ok := s.catalogs[catalogName]
	if !ok {
		return nil, ErrUnknownCatalog
	}

	sess := assessment.StartAssessment(uuid.NewString(), catalog)

	s.mu.Lock()
	s.sessions[sess.ID] = &sessionEntry{session: sess, lastSeen: time.Now().UTC()}
	s.mu.Unlock()

	s.logger.Info("assessment started",
		zap.String("session_id", sess.ID),
		zap.String("catalog", catalogName),
	)
	return sess, nil
}

// WithSession runs fn against the session while holding the registry lock,
// keeping all mutation of one session serialized.
func (s *AssessmentService) WithSession(id string, fn func(*assessment.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	entry.lastSeen = time.Now().UTC()
	return fn(entry.session)
}

// Sweep drops sessions idle longer than the TTL and reports how many went.
func (s *AssessmentService) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().UTC().Add(-s.ttl)
	removed := 0
	for id, entry := range s.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Info("expired assessment sessions removed", zap.Int("count", removed))
	}
	return removed
}

// RunJanitor sweeps periodically until done is closed. Call in a goroutine
// from main.
func (s *AssessmentService) RunJanitor(done <-chan struct{}, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
