package services_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/martapiva/presenze_tracker_app/internal/core/domain"
	"github.com/martapiva/presenze_tracker_app/internal/core/services"
	"github.com/stretchr/testify/mock"
)

type MockSweeper struct {
	mock.Mock
}

func (m *MockSweeper) AutoCloseSessions(ctx context.Context, customCloseTime string) (*domain.SweepResult, error) {
	args := m.Called(ctx, customCloseTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SweepResult), args.Error(1)
}

func TestSweepScheduler_RunOnStart(t *testing.T) {
	sweeper := new(MockSweeper)
	done := make(chan struct{})
	sweeper.On("AutoCloseSessions", mock.Anything, "").
		Return(&domain.SweepResult{Closed: 0, Message: "Nessuna sessione attiva da chiudere"}, nil).
		Once().
		Run(func(mock.Arguments) { close(done) })

	scheduler := services.NewSweepScheduler(sweeper, services.SchedulerConfig{
		Interval:   time.Hour,
		RunOnStart: true,
	}, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	go scheduler.Run(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("initial sweep never ran")
	}
	cancel()
	sweeper.AssertExpectations(t)
}

func TestSweepScheduler_SweepsOnTick(t *testing.T) {
	sweeper := new(MockSweeper)
	done := make(chan struct{})
	var once sync.Once
	// The ticker can fire again before cancel lands, so the expectation is not
	// bounded with Once.
	sweeper.On("AutoCloseSessions", mock.Anything, "").
		Return(&domain.SweepResult{Closed: 1, Message: "1 sessioni chiuse automaticamente alle 18:00"}, nil).
		Run(func(mock.Arguments) { once.Do(func() { close(done) }) })

	scheduler := services.NewSweepScheduler(sweeper, services.SchedulerConfig{
		Interval:   10 * time.Millisecond,
		RunOnStart: false,
	}, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	go scheduler.Run(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker sweep never ran")
	}
	cancel()
	sweeper.AssertExpectations(t)
}

func TestSweepScheduler_StopsOnContextCancel(t *testing.T) {
	sweeper := new(MockSweeper)

	scheduler := services.NewSweepScheduler(sweeper, services.SchedulerConfig{
		Interval:   time.Hour,
		RunOnStart: false,
	}, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(stopped)
	}()

	cancel()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop on cancel")
	}
	sweeper.AssertNotCalled(t, "AutoCloseSessions", mock.Anything, mock.Anything)
}
