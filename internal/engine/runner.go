package engine

import (
	"context"
	"time"
)

// Runner owns a Session and serializes access to it from concurrent
// producers. Commands run on the loop goroutine; the ticker only runs
// while the session is Playing.
type Runner struct {
	session  *Session
	tickRate int
	cmds     chan func(*Session)
}

// NewRunner wraps s, ticking tickRate times per second while Playing.
func NewRunner(s *Session, tickRate int) *Runner {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Runner{
		session:  s,
		tickRate: tickRate,
		cmds:     make(chan func(*Session), 16),
	}
}

// Do queues fn to run against the session on the loop goroutine.
// It blocks until the command is accepted or ctx is done.
func (r *Runner) Do(ctx context.Context, fn func(*Session)) error {
	select {
	case r.cmds <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drives the session until ctx is cancelled. emit receives a snapshot
// after every tick and every command.
func (r *Runner) Run(ctx context.Context, emit func(Snapshot)) error {
	interval := time.Second / time.Duration(r.tickRate)
	dt := interval.Seconds()

	var ticker *time.Ticker
	var tickC <-chan time.Time
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		playing := r.session.Status() == StatusPlaying
		switch {
		case playing && ticker == nil:
			ticker = time.NewTicker(interval)
			tickC = ticker.C
		case !playing && ticker != nil:
			ticker.Stop()
			ticker, tickC = nil, nil
		}

		select {
		case <-ctx.Done():
			return nil
		case fn := <-r.cmds:
			fn(r.session)
			emit(r.session.Flush())
		case <-tickC:
			emit(r.session.Tick(dt))
		}
	}
}
