package audit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestWorker_PersistsEvents(t *testing.T) {
	store := NewInMemoryStore()
	inbox := make(chan Event, 8)
	worker := NewWorker(store, inbox, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = worker.Run(ctx)
	}()

	publisher := NewPublisher(inbox, testLogger())
	require.NoError(t, publisher.Emit(ctx, Event{Type: EventTipCreated, SubjectID: "tip-1"}))
	require.NoError(t, publisher.Emit(ctx, Event{Type: EventTipExpired, SubjectID: "tip-1"}))

	assert.Eventually(t, func() bool {
		return len(store.Events()) == 2
	}, time.Second, 10*time.Millisecond)

	events := store.Events()
	assert.Equal(t, EventTipCreated, events[0].Type)
	assert.False(t, events[0].Timestamp.IsZero(), "publisher stamps events without a timestamp")

	cancel()
	<-done
}

type failingStore struct {
	mu    sync.Mutex
	calls int
}

func (f *failingStore) Append(context.Context, Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return errors.New("sink down")
}

func (f *failingStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestWorker_SurvivesSinkFailures(t *testing.T) {
	store := &failingStore{}
	inbox := make(chan Event, 8)
	worker := NewWorker(store, inbox, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = worker.Run(ctx)
	}()

	inbox <- Event{Type: EventTipCreated, SubjectID: "a"}
	inbox <- Event{Type: EventTipDeleted, SubjectID: "b"}

	assert.Eventually(t, func() bool {
		return store.count() == 2
	}, time.Second, 10*time.Millisecond, "worker keeps consuming after append failures")

	cancel()
	<-done
}

func TestPublisher_DropsWhenInboxFull(t *testing.T) {
	inbox := make(chan Event, 1)
	publisher := NewPublisher(inbox, testLogger())

	ctx := context.Background()
	require.NoError(t, publisher.Emit(ctx, Event{SubjectID: "first"}))
	require.NoError(t, publisher.Emit(ctx, Event{SubjectID: "dropped"}), "emit never blocks the caller")
	assert.Len(t, inbox, 1)
}
