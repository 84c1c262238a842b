// Package scheduler drives many independently paced animation tasks on a
// shared discrete clock. Each tick advances every active task by exactly one
// step, in insertion order, on the caller's goroutine.
package scheduler

// Task is a suspendable unit of per-tick work.
// Step performs one unit of progress and reports whether more steps remain.
// All state a task needs between steps lives in the task value itself.
type Task interface {
	Step() bool
}

// TaskFunc adapts a plain function to the Task interface.
type TaskFunc func() bool

// Step calls f.
func (f TaskFunc) Step() bool {
	return f()
}

// Scheduler is a cooperative round-robin driver.
// It is not safe for concurrent use: tasks, the surface they draw on and the
// shared game state are all owned by the goroutine that calls Tick.
type Scheduler struct {
	tasks   []Task
	pending []Task // added during the current tick, activated on the next
	ticking bool
	ticks   int
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{
		tasks:   make([]Task, 0, 64),
		pending: make([]Task, 0, 8),
	}
}

// Add queues a task. Tasks added between ticks take part in the next tick.
// Tasks added by a task while a tick is in progress are held back until the
// following tick, so a new task never observes a partial pass.
func (s *Scheduler) Add(t Task) {
	if t == nil {
		return
	}
	if s.ticking {
		s.pending = append(s.pending, t)
		return
	}
	s.tasks = append(s.tasks, t)
}

// Tick advances every active task by one step and drops finished ones.
// Returns the number of tasks stepped.
func (s *Scheduler) Tick() int {
	s.ticking = true
	stepped := len(s.tasks)

	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Step() {
			kept = append(kept, t)
		}
	}
	// Clear the tail so finished tasks can be collected.
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept

	s.ticking = false
	s.ticks++
	s.flushPending()
	return stepped
}

// flushPending activates tasks queued during the last tick.
func (s *Scheduler) flushPending() {
	s.tasks = append(s.tasks, s.pending...)
	for i := range s.pending {
		s.pending[i] = nil
	}
	s.pending = s.pending[:0]
}

// Retain keeps only the tasks for which keep returns true, including tasks
// still waiting for their first tick. Calling it from inside a task step is
// not supported; the game calls it between ticks.
func (s *Scheduler) Retain(keep func(Task) bool) {
	s.tasks = filter(s.tasks, keep)
	s.pending = filter(s.pending, keep)
}

func filter(tasks []Task, keep func(Task) bool) []Task {
	kept := tasks[:0]
	for _, t := range tasks {
		if keep(t) {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(tasks); i++ {
		tasks[i] = nil
	}
	return kept
}

// Len returns the number of active tasks plus those waiting for the next tick.
func (s *Scheduler) Len() int {
	return len(s.tasks) + len(s.pending)
}

// Ticks returns how many ticks have completed.
func (s *Scheduler) Ticks() int {
	return s.ticks
}

// Each calls fn for every active task in step order.
func (s *Scheduler) Each(fn func(Task)) {
	for _, t := range s.tasks {
		fn(t)
	}
	for _, t := range s.pending {
		fn(t)
	}
}

// Sleep returns a task that does nothing for n steps and then finishes.
func Sleep(n int) Task {
	return &sleepTask{left: n}
}

type sleepTask struct {
	left int
}

func (t *sleepTask) Step() bool {
	t.left--
	return t.left > 0
}

// Sequence runs tasks one after another as a single task. The step on which
// one part finishes is also the last step of that part; the next part starts
// on the following step.
func Sequence(parts ...Task) Task {
	return &sequence{parts: parts}
}

type sequence struct {
	parts []Task
}

func (q *sequence) Step() bool {
	for len(q.parts) > 0 && q.parts[0] == nil {
		q.parts = q.parts[1:]
	}
	if len(q.parts) == 0 {
		return false
	}
	if !q.parts[0].Step() {
		q.parts = q.parts[1:]
	}
	return len(q.parts) > 0
}
