// Package runtime hosts the owner context of a provider graph: the event loop
// every backend callback is dispatched onto, and the fan-out of notifications
// to observers. It contains no session or connection rules.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Loop is the single owner context of a provider graph.
// Tasks run one at a time, in the order they were posted. Posting never
// blocks, so backend callbacks and tasks running on the loop may post freely.
type Loop struct {
	log     *slog.Logger
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	stopped bool
}

func NewLoop(log *slog.Logger, capacity int) *Loop {
	return &Loop{
		log:   log,
		queue: make([]func(), 0, capacity),
		wake:  make(chan struct{}, 1),
	}
}

// Post enqueues a task. It returns false once the loop has stopped.
func (l *Loop) Post(task func()) bool {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, task)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Pending returns the number of queued tasks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Run executes tasks until ctx is canceled. Tasks still queued at that point
// are dropped and later posts are refused.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			l.mu.Lock()
			l.stopped = true
			dropped := len(l.queue)
			l.queue = nil
			l.mu.Unlock()
			l.log.Debug("Stopping event loop", "dropped", dropped)
			return ctx.Err()
		case <-l.wake:
			for {
				task, ok := l.next()
				if !ok {
					break
				}
				l.execute(task)
			}
		}
	}
}

func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil, false
	}
	task := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return task, true
}

// execute isolates a panicking task so the loop keeps serving the others.
func (l *Loop) execute(task func()) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("Event loop task panicked", "panic", fmt.Sprint(r))
		}
	}()
	task()
}

// InlineDispatcher runs tasks on the caller's goroutine.
type InlineDispatcher struct{}

func (InlineDispatcher) Post(task func()) bool {
	task()
	return true
}
