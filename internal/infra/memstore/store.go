// Package memstore provides the in-memory implementation of domain.TaskStore.
// Tasks live for the duration of one session and are never written to disk.
package memstore

import (
	"slices"
	"sync"

	"github.com/runoshun/recur/internal/domain"
)

// Ensure Store implements domain.TaskStore.
var _ domain.TaskStore = (*Store)(nil)

// Store is an ordered task collection guarded by a single mutex.
// Every operation, including Toggle's lookup, decide and apply sequence,
// runs entirely under the lock, so readers never observe a partial toggle.
// Fields are ordered to minimize memory padding.
type Store struct {
	clock domain.Clock
	ids   domain.IDGenerator
	tasks []domain.Task // Insertion order
	mu    sync.Mutex
}

// New creates an empty Store.
func New(clock domain.Clock, ids domain.IDGenerator) *Store {
	return &Store{
		clock: clock,
		ids:   ids,
	}
}

// Add appends a new task built from the draft and returns a copy of it.
func (s *Store) Add(draft domain.TaskDraft) domain.Task {
	var added domain.Task
	s.withLock(func() {
		added = draft.NewTask(s.ids.NewID(), s.clock.Now())
		s.tasks = append(s.tasks, added)
	})
	return added.Clone()
}

// Update replaces the task with the given ID. The stored ID is kept even if
// task carries a different one.
func (s *Store) Update(id string, task domain.Task) bool {
	found := false
	s.withLock(func() {
		i := s.indexOf(id)
		if i < 0 {
			return
		}
		replacement := task.Clone()
		replacement.ID = id
		s.tasks[i] = replacement
		found = true
	})
	return found
}

// Modify runs fn on a copy of the task with the given ID and stores the result.
// The ID cannot be changed. Nothing is stored if fn fails.
func (s *Store) Modify(id string, fn func(*domain.Task) error) (domain.Task, bool, error) {
	var (
		modified domain.Task
		found    bool
		err      error
	)
	s.withLock(func() {
		i := s.indexOf(id)
		if i < 0 {
			return
		}
		found = true
		task := s.tasks[i].Clone()
		if err = fn(&task); err != nil {
			return
		}
		task.ID = id
		s.tasks[i] = task
		modified = task.Clone()
	})
	return modified, found, err
}

// Delete removes the task with the given ID.
func (s *Store) Delete(id string) bool {
	found := false
	s.withLock(func() {
		i := s.indexOf(id)
		if i < 0 {
			return
		}
		s.tasks = slices.Delete(s.tasks, i, i+1)
		found = true
	})
	return found
}

// Toggle flips the completion of the task with the given ID.
// The toggled task replaces the original in place and a spawned occurrence,
// if any, is appended with a fresh ID. The returned decision carries that ID.
func (s *Store) Toggle(id string) (domain.Decision, bool) {
	var (
		decision domain.Decision
		found    bool
	)
	s.withLock(func() {
		i := s.indexOf(id)
		if i < 0 {
			return
		}
		decision = domain.Decide(s.tasks[i], s.clock.Now())
		s.tasks[i] = decision.Current.Clone()
		if decision.Spawned != nil {
			decision.Spawned.ID = s.ids.NewID()
			s.tasks = append(s.tasks, decision.Spawned.Clone())
		}
		found = true
	})
	return decision, found
}

// Get returns a copy of the task with the given ID.
func (s *Store) Get(id string) (domain.Task, bool) {
	var (
		task  domain.Task
		found bool
	)
	s.withLock(func() {
		if i := s.indexOf(id); i >= 0 {
			task = s.tasks[i].Clone()
			found = true
		}
	})
	return task, found
}

// List returns copies of all tasks in insertion order.
func (s *Store) List() []domain.Task {
	var tasks []domain.Task
	s.withLock(func() {
		tasks = make([]domain.Task, 0, len(s.tasks))
		for _, t := range s.tasks {
			tasks = append(tasks, t.Clone())
		}
	})
	return tasks
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// withLock runs fn while holding the store lock.
func (s *Store) withLock(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// indexOf returns the position of the task with the given ID, or -1.
// Callers must hold the lock.
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t domain.Task) bool {
		return t.ID == id
	})
}
