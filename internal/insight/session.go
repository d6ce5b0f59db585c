package insight

import (
	"context"
	"sync"

	"github.com/nataschneider2001/life-Os/internal/domain"
)

// Result carries one finished analysis back to the presenter.
type Result struct {
	Kind Analysis
	Text string
}

// Session is the async request/response layer over a Coach. At most one
// request is of interest at a time: starting a new one discards the result
// of any prior in-flight call without aborting it. There is no timeout; a
// stuck provider simply leaves the session pending.
type Session struct {
	coach *Coach

	mu      sync.Mutex
	gen     int
	pending bool

	results chan Result
}

func NewSession(coach *Coach) *Session {
	return &Session{
		coach:   coach,
		results: make(chan Result, 1),
	}
}

// Request starts an analysis in the background. Domain mutations stay
// available while it runs; the snapshot passed in is the one analyzed.
func (s *Session) Request(ctx context.Context, kind Analysis, state domain.AppState) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	coach := s.coach
	s.pending = true
	// Flush a result nobody collected from a previous request.
	select {
	case <-s.results:
	default:
	}
	s.mu.Unlock()

	go func() {
		text := coach.Analyze(ctx, kind, state)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			// A newer request superseded this one; drop the stale result.
			return
		}
		s.pending = false
		select {
		case s.results <- Result{Kind: kind, Text: text}:
		default:
		}
	}()
}

// Results delivers at most one Result per Request.
func (s *Session) Results() <-chan Result {
	return s.results
}

// Pending reports whether the latest request is still outstanding.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}
