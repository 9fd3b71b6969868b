package service

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrServiceAlreadyStarted = errors.New("service already started")
	ErrServiceAlreadyStopped = errors.New("service already stopped")
)

type Service interface {
	Start(ctx context.Context) error
	IsRunning() bool
	Serve()
	Stop()
}

type StartStopCallback interface {
	OnStart(ctx context.Context) error
	OnStop()
}

// SimpleService runs a StartStopCallback once. Cancelling the context given
// to Start stops it, and a stopped service cannot be restarted.
type SimpleService struct {
	mu          sync.Mutex
	cancel      context.CancelFunc
	done        <-chan struct{}
	stopped     bool
	startStopCb StartStopCallback
}

func NewSimpleService(startStopCb StartStopCallback) *SimpleService {
	return &SimpleService{
		startStopCb: startStopCb,
	}
}

func (s *SimpleService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrServiceAlreadyStopped
	}
	if s.done != nil {
		return ErrServiceAlreadyStarted
	}
	wrappedCtx, cancel := context.WithCancel(ctx)
	if err := s.startStopCb.OnStart(wrappedCtx); err != nil {
		cancel()
		return err
	}
	s.cancel = cancel
	s.done = wrappedCtx.Done()
	go func() {
		<-wrappedCtx.Done()
		s.Stop()
	}()
	return nil
}

func (s *SimpleService) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done != nil && !s.stopped
}

// Serve blocks until the service is stopped. It returns at once if the
// service was never started.
func (s *SimpleService) Serve() {
	s.mu.Lock()
	ch := s.done
	s.mu.Unlock()
	if ch != nil {
		<-ch
	}
}

func (s *SimpleService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == nil || s.stopped {
		return
	}
	s.stopped = true
	s.startStopCb.OnStop()
	s.cancel()
}
