package insight

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nataschneider2001/life-Os/internal/domain"
)

type blockingProvider struct {
	release chan struct{}
	text    string
}

func (b *blockingProvider) Generate(ctx context.Context, payload string, instruction string) (string, error) {
	<-b.release
	return b.text, nil
}

func TestSessionDeliversResult(t *testing.T) {
	p := &fakeProvider{text: "keep going"}
	s := NewSession(NewCoach(p, nil))

	s.Request(context.Background(), AnalysisGeneral, domain.DefaultState())

	select {
	case res := <-s.Results():
		assert.Equal(t, AnalysisGeneral, res.Kind)
		assert.Equal(t, "keep going", res.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("no result delivered")
	}
	assert.False(t, s.Pending())
}

func TestSessionPendingWhileInFlight(t *testing.T) {
	p := &blockingProvider{release: make(chan struct{}), text: "done"}
	s := NewSession(NewCoach(p, nil))

	s.Request(context.Background(), AnalysisRoutine, domain.DefaultState())
	assert.True(t, s.Pending())

	close(p.release)
	select {
	case <-s.Results():
	case <-time.After(2 * time.Second):
		t.Fatal("no result delivered")
	}
	assert.False(t, s.Pending())
}

func TestSessionDiscardsStaleResult(t *testing.T) {
	slow := &blockingProvider{release: make(chan struct{}), text: "stale"}
	s := NewSession(NewCoach(slow, nil))

	// First request hangs on the slow provider.
	s.Request(context.Background(), AnalysisFinance, domain.DefaultState())

	// Second request supersedes it before it finishes.
	fast := make(chan struct{})
	s.coach = NewCoach(&blockingProvider{release: fast, text: "fresh"}, nil)
	s.Request(context.Background(), AnalysisGeneral, domain.DefaultState())

	close(fast)
	var res Result
	select {
	case res = <-s.Results():
	case <-time.After(2 * time.Second):
		t.Fatal("no result delivered")
	}
	require.Equal(t, "fresh", res.Text)

	// Let the stale call finish; its result must not surface.
	close(slow.release)
	select {
	case res = <-s.Results():
		t.Fatalf("unexpected stale result: %+v", res)
	case <-time.After(100 * time.Millisecond):
	}
}
