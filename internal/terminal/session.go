// Package terminal owns the lifetime of the interactive terminal: it records
// the state before the UI takes over and puts it back on every exit path.
package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mbwilding/steam-achievement-manager/internal/logging/events"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Session is a captured terminal. Release is safe to call more than once and
// from any goroutine; only the first call has an effect.
type Session struct {
	fd     int
	tty    bool
	state  *term.State
	output *termenv.Output
	once   sync.Once
}

// Open captures the state of in when it is a terminal. Restore sequences are
// written to out.
func Open(in *os.File, out io.Writer) (*Session, error) {
	fd := int(in.Fd())
	s := newSession(fd, term.IsTerminal(fd), out)
	if !s.tty {
		return s, nil
	}
	st, err := term.GetState(fd)
	if err != nil {
		return nil, fmt.Errorf("capture terminal state: %w", err)
	}
	s.state = st
	return s, nil
}

func newSession(fd int, tty bool, out io.Writer) *Session {
	return &Session{fd: fd, tty: tty, output: termenv.NewOutput(out)}
}

// Interactive reports whether the session wraps a terminal.
func (s *Session) Interactive() bool {
	return s.tty
}

// Release leaves the alternate screen, disables mouse reporting, shows the
// cursor and restores the captured line discipline.
func (s *Session) Release(reason string) {
	s.once.Do(func() {
		if !s.tty {
			return
		}
		s.output.DisableMouseCellMotion()
		s.output.ExitAltScreen()
		s.output.ShowCursor()
		if s.state != nil {
			_ = term.Restore(s.fd, s.state)
		}
		events.App.TerminalRestore(reason)
	})
}

// Run executes fn inside a terminal session. The terminal is restored when fn
// returns, when it panics (the panic is re-raised afterwards) and when the
// process receives SIGINT or SIGTERM, which also cancels the context handed
// to fn.
func Run(ctx context.Context, in *os.File, out io.Writer, fn func(ctx context.Context) error) error {
	s, err := Open(in, out)
	if err != nil {
		return err
	}
	return s.Run(ctx, fn)
}

// Run is Run for an already opened session.
func (s *Session) Run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			s.Release("signal")
		case <-done:
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			s.Release("panic")
			panic(r)
		}
		s.Release("exit")
	}()
	return fn(ctx)
}
