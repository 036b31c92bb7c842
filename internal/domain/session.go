package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	m "github.com/mouse-blink/bodyscan/internal/model"
)

// Session is the event loop that owns a Scanner. Commands, snapshot reads and
// sweep ticks are all handled on the goroutine running Run, one at a time and
// in arrival order.
type Session struct {
	scanner    *Scanner
	dispatcher *Dispatcher
	logger     *zap.Logger
	autoStart  time.Duration

	calls chan call
	done  chan struct{}
}

type call struct {
	fn   func()
	done chan struct{}
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithAutoStart submits START_SCAN once delay has elapsed after Run starts.
// A zero delay disables it.
func WithAutoStart(delay time.Duration) SessionOption {
	return func(s *Session) {
		s.autoStart = delay
	}
}

// NewSession creates a session around scanner and dispatcher. The dispatcher
// must drive the same scanner.
func NewSession(scanner *Scanner, dispatcher *Dispatcher, logger *zap.Logger, opts ...SessionOption) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		scanner:    scanner,
		dispatcher: dispatcher,
		logger:     logger,
		calls:      make(chan call),
		done:       make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run processes commands and ticks until ctx is done. The scanner is closed
// when Run returns. Run must be called once.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.done)
	defer s.scanner.Close()

	s.logger.Info("scanner session started")
	defer s.logger.Info("scanner session stopped")

	var autoStart <-chan time.Time

	if s.autoStart > 0 {
		timer := time.NewTimer(s.autoStart)
		defer timer.Stop()

		autoStart = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case c := <-s.calls:
			c.fn()
			close(c.done)

		case <-s.scanner.Ticks():
			s.scanner.Tick()

		case <-autoStart:
			autoStart = nil

			s.logger.Debug("auto-starting sweep")
			s.dispatch(TokenStartScan)
		}
	}
}

// Submit dispatches command on the loop and returns its result. Errors from
// the dispatcher, such as an unrecognized part, are returned together with
// a populated Result.
func (s *Session) Submit(ctx context.Context, command string) (m.Result, error) {
	var (
		res     m.Result
		execErr error
	)

	err := s.do(ctx, func() {
		res, execErr = s.dispatch(command)
	})
	if err != nil {
		return m.Result{}, err
	}

	return res, execErr
}

// Snapshot reads the current render state through the loop.
func (s *Session) Snapshot(ctx context.Context) (m.RenderState, error) {
	var rs m.RenderState

	err := s.do(ctx, func() {
		rs = s.scanner.Snapshot()
	})

	return rs, err
}

// Clear returns the scanner to idle on the loop. It is the reset action of
// the front ends and is not reachable through command text, which always goes
// to the dispatcher.
func (s *Session) Clear(ctx context.Context) (m.Result, error) {
	var res m.Result

	err := s.do(ctx, func() {
		s.scanner.ClearAll()

		res = m.Result{
			ID:      uuid.NewString(),
			Outcome: m.OutcomeCleared,
			State:   s.scanner.Snapshot(),
		}

		s.logger.Debug("scanner cleared", zap.String("id", res.ID))
	})
	if err != nil {
		return m.Result{}, err
	}

	return res, nil
}

// Done is closed once Run has returned.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) dispatch(command string) (m.Result, error) {
	id := uuid.NewString()
	outcome, err := s.dispatcher.Execute(command)

	s.logger.Debug("command dispatched",
		zap.String("id", id),
		zap.String("command", command),
		zap.Stringer("outcome", outcome))

	return m.Result{
		ID:      id,
		Command: command,
		Outcome: outcome,
		State:   s.scanner.Snapshot(),
	}, err
}

func (s *Session) do(ctx context.Context, fn func()) error {
	c := call{fn: fn, done: make(chan struct{})}

	select {
	case s.calls <- c:
	case <-s.done:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	// Once accepted, the loop runs fn before it can exit.
	<-c.done

	return nil
}
