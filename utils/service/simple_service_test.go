package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type mockCallback struct {
	started int32
	stopped int32
	err     error
}

func (m *mockCallback) OnStart(ctx context.Context) error {
	atomic.AddInt32(&m.started, 1)
	return m.err
}

func (m *mockCallback) OnStop() {
	atomic.AddInt32(&m.stopped, 1)
}

func TestSimpleService(t *testing.T) {
	cb := &mockCallback{}
	s := NewSimpleService(cb)
	require.Equal(t, false, s.IsRunning())
	require.Nil(t, s.Start(context.Background()))
	require.Equal(t, true, s.IsRunning())
	require.ErrorIs(t, s.Start(context.Background()), ErrServiceAlreadyStarted)
	s.Stop()
	s.Stop()
	s.Serve()
	require.Equal(t, false, s.IsRunning())
	require.Equal(t, int32(1), atomic.LoadInt32(&cb.started))
	require.Equal(t, int32(1), atomic.LoadInt32(&cb.stopped))
	require.ErrorIs(t, s.Start(context.Background()), ErrServiceAlreadyStopped)
}

func TestSimpleServiceStopsWithContext(t *testing.T) {
	cb := &mockCallback{}
	s := NewSimpleService(cb)
	ctx, cancel := context.WithCancel(context.Background())
	require.Nil(t, s.Start(ctx))
	cancel()
	s.Serve()
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&cb.stopped) == 1
	}, time.Second, 10*time.Millisecond)
	require.Equal(t, false, s.IsRunning())
}

func TestSimpleServiceStartFailure(t *testing.T) {
	cb := &mockCallback{err: errors.New("boom")}
	s := NewSimpleService(cb)
	require.NotNil(t, s.Start(context.Background()))
	require.Equal(t, false, s.IsRunning())
	s.Serve()
	s.Stop()
	require.Equal(t, int32(0), atomic.LoadInt32(&cb.stopped))
}
