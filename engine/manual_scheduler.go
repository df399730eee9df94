package engine

import (
	"sort"
	"sync"
	"time"
)

// ManualScheduler is a controllable Scheduler for tests
// Nothing fires until Advance moves simulated time past a task's deadline
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	owner *ManualScheduler
	due   time.Duration
	seq   uint64
	fn    func()
}

// NewManualScheduler creates a scheduler at simulated time zero
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc queues fn to run once simulated time reaches now+d
func (m *ManualScheduler) AfterFunc(d time.Duration, fn func()) ScheduledTask {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	task := &manualTask{owner: m, due: m.now + d, seq: m.seq, fn: fn}
	m.tasks = append(m.tasks, task)
	return task
}

// Advance moves simulated time forward by d, firing due tasks in deadline order
// Tasks scheduled by a firing callback run in the same call if they fall due within d
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		task := m.popDue(target)
		if task == nil {
			break
		}
		// Callback runs unlocked so it can schedule again
		task.fn()
	}

	m.mu.Lock()
	m.now = target
	m.mu.Unlock()
}

// popDue removes and returns the earliest task due at or before target
func (m *ManualScheduler) popDue(target time.Duration) *manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()

	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].due != m.tasks[j].due {
			return m.tasks[i].due < m.tasks[j].due
		}
		return m.tasks[i].seq < m.tasks[j].seq
	})

	if len(m.tasks) == 0 || m.tasks[0].due > target {
		return nil
	}

	task := m.tasks[0]
	m.tasks = m.tasks[1:]
	m.now = task.due
	return task
}

// Elapsed returns the simulated time since creation
func (m *ManualScheduler) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of tasks that have neither fired nor been stopped
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

func (t *manualTask) Stop() bool {
	m := t.owner
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, task := range m.tasks {
		if task == t {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return true
		}
	}
	return false
}
