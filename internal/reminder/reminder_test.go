package reminder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingNotifier struct {
	calls atomic.Int32
	err   error
	done  chan struct{}
}

func (n *countingNotifier) SendDueReminders(context.Context) (int, error) {
	if n.calls.Add(1) == 1 && n.done != nil {
		close(n.done)
	}
	return 3, n.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_RunsOnInterval(t *testing.T) {
	n := &countingNotifier{done: make(chan struct{})}
	s := New(n, 50*time.Millisecond, testLogger())
	require.NoError(t, s.Start())
	defer s.Stop()

	select {
	case <-n.done:
	case <-time.After(5 * time.Second):
		t.Fatal("reminder job did not run")
	}
	assert.GreaterOrEqual(t, n.calls.Load(), int32(1))
}

func TestScheduler_RunOnce(t *testing.T) {
	n := &countingNotifier{}
	s := New(n, 0, nil)
	assert.Equal(t, DefaultInterval, s.interval)

	sent, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, sent)

	n.err = errors.New("smtp down")
	_, err = s.RunOnce(context.Background())
	assert.Error(t, err)
	// A failing run only logs.
	s.run()
	assert.Equal(t, int32(3), n.calls.Load())
}
