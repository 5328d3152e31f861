package application

import (
	"sync"
	"time"

	"storefront-state/internal/adapters/output/memory"
)

// fakeScheduler queues callbacks until Advance moves its virtual time past them
type fakeScheduler struct {
	mu      sync.Mutex
	elapsed time.Duration
	pending []scheduledFunc
}

type scheduledFunc struct {
	at time.Duration
	f  func()
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, scheduledFunc{at: s.elapsed + d, f: f})
}

// Advance moves virtual time forward and runs every callback that became due, in schedule order
func (s *fakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.elapsed += d
	var due, rest []scheduledFunc
	for _, p := range s.pending {
		if p.at <= s.elapsed {
			due = append(due, p)
		} else {
			rest = append(rest, p)
		}
	}
	s.pending = rest
	s.mu.Unlock()

	for _, p := range due {
		p.f()
	}
}

func (s *fakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// fakeClock returns a fixed time until moved
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// countingStorage counts writes on top of a memory storage
type countingStorage struct {
	*memory.MemoryStorage
	mu     sync.Mutex
	sets   int
	failOn map[string]error
}

func newCountingStorage() *countingStorage {
	return &countingStorage{MemoryStorage: memory.NewMemoryStorage(0), failOn: map[string]error{}}
}

func (c *countingStorage) SetItem(key, value string) error {
	c.mu.Lock()
	c.sets++
	err := c.failOn[key]
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.MemoryStorage.SetItem(key, value)
}

func (c *countingStorage) Sets() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sets
}

type testEnv struct {
	storage   *countingStorage
	scheduler *fakeScheduler
	clock     *fakeClock
	container *SessionContainer
}

func newTestEnv(opts Options) *testEnv {
	env := &testEnv{
		storage:   newCountingStorage(),
		scheduler: &fakeScheduler{},
		clock:     newFakeClock(),
	}
	env.container = NewSessionContainer(env.storage, env.scheduler, env.clock, opts)
	return env
}

// reopen builds a second container on the same storage, as a page reload would
func (e *testEnv) reopen(opts Options) *SessionContainer {
	return NewSessionContainer(e.storage, e.scheduler, e.clock, opts)
}
