package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type statusRefresherStub struct {
	calls   atomic.Int32
	updated int
	err     error
}

func (s *statusRefresherStub) RefreshStatuses(_ context.Context) (int, error) {
	s.calls.Add(1)
	if s.err != nil {
		return 0, s.err
	}
	return s.updated, nil
}

func TestRefresh_Success(t *testing.T) {
	stub := &statusRefresherStub{updated: 3}
	job := &CompetitionStatusRefreshJob{refresher: stub, interval: time.Millisecond, stop: make(chan struct{})}

	job.refresh(context.Background())
	require.Equal(t, int32(1), stub.calls.Load())
}

func TestRefresh_ErrorDoesNotPanic(t *testing.T) {
	stub := &statusRefresherStub{err: errors.New("db down")}
	job := &CompetitionStatusRefreshJob{refresher: stub, interval: time.Millisecond, stop: make(chan struct{})}

	job.refresh(context.Background())
	require.Equal(t, int32(1), stub.calls.Load())
}

func TestStart_RunsImmediatelyAndOnTicks(t *testing.T) {
	stub := &statusRefresherStub{}
	job := &CompetitionStatusRefreshJob{refresher: stub, interval: 5 * time.Millisecond, stop: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return stub.calls.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop on context cancel")
	}
}

func TestStop_StopsTheLoop(t *testing.T) {
	stub := &statusRefresherStub{}
	job := &CompetitionStatusRefreshJob{refresher: stub, interval: time.Hour, stop: make(chan struct{})}

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()

	require.Eventually(t, func() bool { return stub.calls.Load() >= 1 }, time.Second, time.Millisecond)
	job.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop on Stop")
	}
}
