package transfer

import (
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Simulation pacing constants
const (
	// DefaultStepInterval is how often a running transfer advances.
	DefaultStepInterval = 200 * time.Millisecond

	// DefaultStartupDelay holds a task in Starting before bytes flow, long
	// enough for the UI to show the handshake state.
	DefaultStartupDelay = 400 * time.Millisecond

	// Simulated link rate bounds in bytes per second.
	MinRate = 1 << 20 // 1 MB/s
	MaxRate = 8 << 20 // 8 MB/s

	// DefaultVerifyLag is how many received bytes may sit unverified.
	// Reception runs ahead of verification by up to this much.
	DefaultVerifyLag = 512 << 10

	// DefaultDropChance is the per-step probability of a simulated link drop.
	DefaultDropChance = 0.002

	// MaxRetries is how many link drops a transfer survives before it fails.
	MaxRetries = 2

	// DefaultRetryBackoff pauses a transfer after a link drop.
	DefaultRetryBackoff = 2 * time.Second

	// TaskIDPrefix namespaces generated task IDs.
	TaskIDPrefix = "task-"
)

// Service simulates transfer operations. Tasks returned by its methods and
// handed to the update callback are copies; the live records stay owned by
// the service and keep mutating on their ticker goroutines.
type Service struct {
	tasks       map[string]*Task
	order       []string // creation order, GetAllTasks lists it stably
	tasksMutex  sync.RWMutex
	maxParallel int
	activeCount int
	onUpdate    func(*Task) // callback for UI updates

	// Pacing knobs, defaulted by NewService and shortened by tests.
	stepInterval time.Duration
	startupDelay time.Duration
	retryBackoff time.Duration
	verifyLag    int64
	dropChance   float64
}

// NewService creates a new transfer service
func NewService(maxParallel int) *Service {
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Service{
		tasks:        make(map[string]*Task),
		maxParallel:  maxParallel,
		stepInterval: DefaultStepInterval,
		startupDelay: DefaultStartupDelay,
		retryBackoff: DefaultRetryBackoff,
		verifyLag:    DefaultVerifyLag,
		dropChance:   DefaultDropChance,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*Task)) {
	s.onUpdate = callback
}

// AddTask queues a new transfer and starts it if a slot is free
func (s *Service) AddTask(name string, totalBytes int64) (*Task, error) {
	if name == "" {
		return nil, fmt.Errorf("transfer name is empty")
	}
	if totalBytes <= 0 {
		return nil, fmt.Errorf("transfer size must be positive, got %d", totalBytes)
	}

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	// Check for duplicate names among unfinished tasks
	for _, task := range s.tasks {
		if task.Name == name && !task.Status.IsFinished() {
			return nil, fmt.Errorf("task already exists for name: %s", name)
		}
	}

	task := &Task{
		ID:         generateTaskID(),
		Name:       name,
		Status:     StatusPending,
		TotalBytes: totalBytes,
		ETASec:     -1,
		StartedAt:  time.Now(),
	}

	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)

	// Claim a slot now so concurrent adds cannot oversubscribe
	if s.activeCount < s.maxParallel {
		s.activeCount++
		go s.startTask(task)
	}

	return cloneTask(task), nil
}

// GetTask returns a snapshot of a task by ID
func (s *Service) GetTask(id string) (*Task, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	if !exists {
		return nil, false
	}
	return cloneTask(task), true
}

// GetAllTasks returns snapshots of all tasks in creation order
func (s *Service) GetAllTasks() []*Task {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*Task, 0, len(s.order))
	for _, id := range s.order {
		if task, exists := s.tasks[id]; exists {
			tasks = append(tasks, cloneTask(task))
		}
	}
	return tasks
}

// StopTask stops a running task
func (s *Service) StopTask(id string) error {
	s.tasksMutex.Lock()
	task, exists := s.tasks[id]
	if !exists {
		s.tasksMutex.Unlock()
		return fmt.Errorf("task not found: %s", id)
	}
	if !task.Status.IsActive() {
		status := task.Status
		s.tasksMutex.Unlock()
		return fmt.Errorf("task is not active: %s", status)
	}

	// The running goroutine observes Stopping and finalizes.
	task.Status = StatusStopping
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
	return nil
}

// PauseTask parks a starting or running task, freeing its slot
func (s *Service) PauseTask(id string) error {
	s.tasksMutex.Lock()
	task, exists := s.tasks[id]
	if !exists {
		s.tasksMutex.Unlock()
		return fmt.Errorf("task not found: %s", id)
	}
	if task.Status != StatusStarting && task.Status != StatusRunning {
		status := task.Status
		s.tasksMutex.Unlock()
		return fmt.Errorf("task is not running: %s", status)
	}

	task.Status = StatusPausing
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
	return nil
}

// ResumeTask re-queues a paused task, keeping its transferred bytes
func (s *Service) ResumeTask(id string) error {
	s.tasksMutex.Lock()
	task, exists := s.tasks[id]
	if !exists {
		s.tasksMutex.Unlock()
		return fmt.Errorf("task not found: %s", id)
	}
	if task.Status != StatusPaused {
		status := task.Status
		s.tasksMutex.Unlock()
		return fmt.Errorf("task is not paused: %s", status)
	}

	task.Status = StatusPending
	claimed := s.activeCount < s.maxParallel
	if claimed {
		s.activeCount++
	}
	s.tasksMutex.Unlock()

	// Notify the queueing before the goroutine can report Starting.
	s.notifyUpdate(task)
	if claimed {
		go s.startTask(task)
	}
	return nil
}

// RestartTask re-queues a finished task from zero bytes
func (s *Service) RestartTask(id string) error {
	s.tasksMutex.Lock()
	task, exists := s.tasks[id]
	if !exists {
		s.tasksMutex.Unlock()
		return fmt.Errorf("task not found: %s", id)
	}
	if !task.Status.IsFinished() {
		status := task.Status
		s.tasksMutex.Unlock()
		return fmt.Errorf("task is still in progress: %s", status)
	}

	task.Status = StatusPending
	task.RecvBytes = 0
	task.DoneBytes = 0
	task.Progress = 0
	task.Percent = 0
	task.Speed = ""
	task.ETASec = -1
	task.Attempts = 0
	task.LastError = ""
	task.StartedAt = time.Now()
	task.FinishedAt = time.Time{}
	claimed := s.activeCount < s.maxParallel
	if claimed {
		s.activeCount++
	}
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
	if claimed {
		go s.startTask(task)
	}
	return nil
}

// RemoveTask forgets a task that is not holding a transfer slot
func (s *Service) RemoveTask(id string) error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		return fmt.Errorf("task not found: %s", id)
	}
	if task.Status.IsActive() {
		return fmt.Errorf("task is still active: %s", task.Status)
	}

	delete(s.tasks, id)
	for i, tid := range s.order {
		if tid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// SetMaxParallel sets the maximum number of concurrently running transfers
func (s *Service) SetMaxParallel(max int) {
	if max < 1 {
		max = 1
	}

	s.tasksMutex.Lock()
	s.maxParallel = max
	s.tasksMutex.Unlock()

	// A raised limit lets queued transfers start.
	for s.startNextPendingTask() {
	}
}

// startTask runs one claimed transfer slot until the task settles. The
// caller must have incremented activeCount for it.
func (s *Service) startTask(task *Task) {
	defer func() {
		s.tasksMutex.Lock()
		s.activeCount--
		s.tasksMutex.Unlock()

		// Try to start next pending task
		s.startNextPendingTask()
	}()

	s.tasksMutex.Lock()
	// The task may have been removed or re-queued between the slot claim
	// and this goroutine getting scheduled.
	if _, exists := s.tasks[task.ID]; !exists || task.Status != StatusPending {
		s.tasksMutex.Unlock()
		return
	}
	task.Status = StatusStarting
	startBytes := task.DoneBytes
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	// Simulated handshake before any bytes move.
	time.Sleep(s.startupDelay)

	s.tasksMutex.Lock()
	if settleInterrupt(task) {
		s.tasksMutex.Unlock()
		s.notifyUpdate(task)
		return
	}
	task.Status = StatusRunning
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	// Each run draws its own link rate.
	rate := MinRate + rand.Float64()*(MaxRate-MinRate)
	s.run(task, rate, startBytes)
}

// run advances a task on a ticker until it completes, fails or is
// interrupted
func (s *Service) run(task *Task, rate float64, startBytes int64) {
	ticker := time.NewTicker(s.stepInterval)
	defer ticker.Stop()

	started := time.Now()

	for range ticker.C {
		s.tasksMutex.Lock()

		if settleInterrupt(task) {
			s.tasksMutex.Unlock()
			s.notifyUpdate(task)
			return
		}

		// Simulated link drop with retry
		if s.dropChance > 0 && rand.Float64() < s.dropChance {
			task.Attempts++
			if task.Attempts > MaxRetries {
				task.Status = StatusError
				task.LastError = "link dropped too many times"
				task.ETASec = -1
				task.FinishedAt = time.Now()
				s.tasksMutex.Unlock()
				s.notifyUpdate(task)
				return
			}
			attempt := task.Attempts
			s.tasksMutex.Unlock()

			log.Printf("Transfer %s link dropped, retry %d/%d", task.ID, attempt, MaxRetries)
			s.notifyUpdate(task)
			time.Sleep(s.retryBackoff)
			continue
		}

		// Reception advances with jitter; verification trails it by the
		// configured lag and drains the tail once reception finishes.
		step := int64(rate * s.stepInterval.Seconds() * (0.75 + rand.Float64()*0.5))
		if step < 1 {
			step = 1
		}
		task.RecvBytes += step
		if task.RecvBytes > task.TotalBytes {
			task.RecvBytes = task.TotalBytes
		}
		verified := task.RecvBytes - s.verifyLag
		if task.RecvBytes == task.TotalBytes {
			verified = task.DoneBytes + step
		}
		if verified > task.RecvBytes {
			verified = task.RecvBytes
		}
		if verified > task.DoneBytes {
			task.DoneBytes = verified
		}

		updateTaskProgressLocked(task, started, startBytes)

		if task.DoneBytes >= task.TotalBytes {
			task.Status = StatusCompleted
			task.Progress = 1.0
			task.Percent = 100
			task.ETASec = -1
			task.FinishedAt = time.Now()
			s.tasksMutex.Unlock()
			s.notifyUpdate(task)
			return
		}

		s.tasksMutex.Unlock()
		s.notifyUpdate(task)
	}
}

// settleInterrupt translates a pending stop or pause request into its final
// status. It reports whether the task should stop running. Caller holds
// tasksMutex.
func settleInterrupt(task *Task) bool {
	switch task.Status {
	case StatusStopping:
		task.Status = StatusStopped
		task.FinishedAt = time.Now()
		return true
	case StatusPausing:
		task.Status = StatusPaused
		return true
	}
	return false
}

// updateTaskProgressLocked recomputes fraction, speed and ETA telemetry.
// Caller holds tasksMutex.
func updateTaskProgressLocked(task *Task, started time.Time, startBytes int64) {
	if task.TotalBytes > 0 {
		percent := float64(task.DoneBytes) / float64(task.TotalBytes) * 100
		task.Percent = int(percent)
		task.Progress = percent / 100.0
	}

	elapsed := time.Since(started)
	if elapsed.Seconds() > 0 {
		bytesPerSecond := float64(task.DoneBytes-startBytes) / elapsed.Seconds()
		task.Speed = fmt.Sprintf("%.1fMB/s", bytesPerSecond/1024/1024)
		if bytesPerSecond > 0 {
			remaining := float64(task.TotalBytes - task.DoneBytes)
			task.ETASec = int(remaining / bytesPerSecond)
		}
	}
}

// startNextPendingTask starts the next queued task if a slot is free. It
// reports whether a task was started.
func (s *Service) startNextPendingTask() bool {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if s.activeCount >= s.maxParallel {
		return false
	}

	// Find next pending task in creation order
	for _, id := range s.order {
		if task, exists := s.tasks[id]; exists && task.Status == StatusPending {
			s.activeCount++
			go s.startTask(task)
			return true
		}
	}
	return false
}

// notifyUpdate hands the callback a snapshot of the task. Callers must not
// hold tasksMutex.
func (s *Service) notifyUpdate(task *Task) {
	if s.onUpdate == nil {
		return
	}
	s.tasksMutex.RLock()
	snapshot := *task
	s.tasksMutex.RUnlock()
	s.onUpdate(&snapshot)
}

// cloneTask copies a task record. Caller holds tasksMutex.
func cloneTask(task *Task) *Task {
	c := *task
	return &c
}

// generateTaskID generates a unique task ID using UUID v7 for better
// uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
