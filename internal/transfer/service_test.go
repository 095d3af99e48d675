package transfer

import (
	"strings"
	"sync"
	"testing"
	"time"
)

const (
	// Large enough never to finish within a test run.
	testBigSize = int64(1) << 30
	// Small enough to finish within a few dozen ticks.
	testSmallSize = int64(64) << 10
)

// fastService returns a service tuned so transfers settle in milliseconds
// and nothing is left to chance.
func fastService(maxParallel int) *Service {
	s := NewService(maxParallel)
	s.stepInterval = time.Millisecond
	s.startupDelay = 0
	s.retryBackoff = time.Millisecond
	s.verifyLag = 0
	s.dropChance = 0
	return s
}

func waitForStatus(t *testing.T, s *Service, id string, want Status) *Task {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if task, ok := s.GetTask(id); ok && task.Status == want {
			return task
		}
		time.Sleep(2 * time.Millisecond)
	}

	got := Status("missing")
	if task, ok := s.GetTask(id); ok {
		got = task.Status
	}
	t.Fatalf("task %s never reached %s, last status %s", id, want, got)
	return nil
}

func TestNewService(t *testing.T) {
	service := NewService(2)

	if service.maxParallel != 2 {
		t.Errorf("Expected maxParallel to be 2, got %d", service.maxParallel)
	}

	if len(service.tasks) != 0 {
		t.Errorf("Expected empty tasks map, got %d items", len(service.tasks))
	}

	if NewService(0).maxParallel != 1 {
		t.Error("Expected maxParallel to be clamped to 1")
	}
}

func TestAddTask(t *testing.T) {
	service := fastService(1)

	task1, err := service.AddTask("payload-001.bin", testBigSize)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task1.Name != "payload-001.bin" {
		t.Errorf("Expected name to be 'payload-001.bin', got '%s'", task1.Name)
	}
	if task1.TotalBytes != testBigSize {
		t.Errorf("Expected size %d, got %d", testBigSize, task1.TotalBytes)
	}
	if task1.Status != StatusPending {
		t.Errorf("Expected returned snapshot to be Pending, got %s", task1.Status)
	}
	if task1.ETASec != -1 {
		t.Errorf("Expected ETASec -1, got %d", task1.ETASec)
	}

	// Duplicate unfinished name must fail
	if _, err = service.AddTask("payload-001.bin", testBigSize); err == nil {
		t.Error("Expected error for duplicate name, got nil")
	}

	// Invalid arguments must fail
	if _, err = service.AddTask("", testBigSize); err == nil {
		t.Error("Expected error for empty name, got nil")
	}
	if _, err = service.AddTask("payload-002.bin", 0); err == nil {
		t.Error("Expected error for zero size, got nil")
	}

	// Different name succeeds
	task2, err := service.AddTask("payload-002.bin", testBigSize)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task2.Name != "payload-002.bin" {
		t.Errorf("Expected name to be 'payload-002.bin', got '%s'", task2.Name)
	}
}

func TestGetTaskReturnsSnapshot(t *testing.T) {
	service := fastService(1)

	task, err := service.AddTask("payload.bin", testBigSize)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	retrieved, exists := service.GetTask(task.ID)
	if !exists {
		t.Fatal("Expected task to exist")
	}
	if retrieved.ID != task.ID {
		t.Errorf("Expected task ID '%s', got '%s'", task.ID, retrieved.ID)
	}

	// Mutating the snapshot must not touch the service record
	retrieved.Name = "mutated"
	again, _ := service.GetTask(task.ID)
	if again.Name != "payload.bin" {
		t.Errorf("Snapshot mutation leaked into the service, name now '%s'", again.Name)
	}

	if _, exists = service.GetTask("non-existing-id"); exists {
		t.Error("Expected task to not exist")
	}
}

func TestGetAllTasksKeepsCreationOrder(t *testing.T) {
	service := fastService(1)

	names := []string{"a.bin", "b.bin", "c.bin"}
	for _, name := range names {
		if _, err := service.AddTask(name, testBigSize); err != nil {
			t.Fatalf("Failed to add %s: %v", name, err)
		}
	}

	tasks := service.GetAllTasks()
	if len(tasks) != len(names) {
		t.Fatalf("Expected %d tasks, got %d", len(names), len(tasks))
	}
	for i, name := range names {
		if tasks[i].Name != name {
			t.Errorf("Task %d: expected name %s, got %s", i, name, tasks[i].Name)
		}
	}
}

func TestCapacityGate(t *testing.T) {
	service := fastService(1)

	first, _ := service.AddTask("first.bin", testBigSize)
	second, _ := service.AddTask("second.bin", testBigSize)

	waitForStatus(t, service, first.ID, StatusRunning)

	queued, _ := service.GetTask(second.ID)
	if queued.Status != StatusPending {
		t.Errorf("Expected second task to wait in Pending, got %s", queued.Status)
	}

	// Freeing the slot starts the queued task
	if err := service.StopTask(first.ID); err != nil {
		t.Fatalf("StopTask failed: %v", err)
	}
	waitForStatus(t, service, first.ID, StatusStopped)
	waitForStatus(t, service, second.ID, StatusRunning)

	if err := service.StopTask(second.ID); err != nil {
		t.Fatalf("StopTask failed: %v", err)
	}
	waitForStatus(t, service, second.ID, StatusStopped)
}

func TestSetMaxParallelStartsQueued(t *testing.T) {
	service := fastService(1)

	var ids []string
	for _, name := range []string{"a.bin", "b.bin", "c.bin"} {
		task, err := service.AddTask(name, testBigSize)
		if err != nil {
			t.Fatalf("Failed to add %s: %v", name, err)
		}
		ids = append(ids, task.ID)
	}

	waitForStatus(t, service, ids[0], StatusRunning)

	service.SetMaxParallel(3)
	waitForStatus(t, service, ids[1], StatusRunning)
	waitForStatus(t, service, ids[2], StatusRunning)

	for _, id := range ids {
		if err := service.StopTask(id); err != nil {
			t.Fatalf("StopTask failed: %v", err)
		}
		waitForStatus(t, service, id, StatusStopped)
	}
}

func TestTransferCompletes(t *testing.T) {
	service := fastService(1)

	task, err := service.AddTask("small.bin", testSmallSize)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	done := waitForStatus(t, service, task.ID, StatusCompleted)

	if done.Progress != 1.0 {
		t.Errorf("Expected progress 1.0, got %v", done.Progress)
	}
	if done.Percent != 100 {
		t.Errorf("Expected percent 100, got %d", done.Percent)
	}
	if done.DoneBytes != done.TotalBytes {
		t.Errorf("Expected all bytes verified, got %d of %d", done.DoneBytes, done.TotalBytes)
	}
	if done.RecvBytes != done.TotalBytes {
		t.Errorf("Expected all bytes received, got %d of %d", done.RecvBytes, done.TotalBytes)
	}
	if done.FinishedAt.IsZero() {
		t.Error("Expected FinishedAt to be set")
	}
}

func TestPauseAndResume(t *testing.T) {
	service := fastService(1)

	task, _ := service.AddTask("paused.bin", testBigSize)
	waitForStatus(t, service, task.ID, StatusRunning)

	if err := service.PauseTask(task.ID); err != nil {
		t.Fatalf("PauseTask failed: %v", err)
	}
	paused := waitForStatus(t, service, task.ID, StatusPaused)

	// Bytes must freeze while parked
	time.Sleep(20 * time.Millisecond)
	still, _ := service.GetTask(task.ID)
	if still.DoneBytes != paused.DoneBytes {
		t.Errorf("Paused task advanced from %d to %d bytes", paused.DoneBytes, still.DoneBytes)
	}

	// Pausing again is an error
	if err := service.PauseTask(task.ID); err == nil {
		t.Error("Expected error pausing a paused task, got nil")
	}

	if err := service.ResumeTask(task.ID); err != nil {
		t.Fatalf("ResumeTask failed: %v", err)
	}
	resumed := waitForStatus(t, service, task.ID, StatusRunning)
	if resumed.DoneBytes < paused.DoneBytes {
		t.Errorf("Resume lost bytes: had %d, now %d", paused.DoneBytes, resumed.DoneBytes)
	}

	if err := service.StopTask(task.ID); err != nil {
		t.Fatalf("StopTask failed: %v", err)
	}
	waitForStatus(t, service, task.ID, StatusStopped)
}

func TestStopSemantics(t *testing.T) {
	service := fastService(1)

	first, _ := service.AddTask("active.bin", testBigSize)
	second, _ := service.AddTask("queued.bin", testBigSize)

	waitForStatus(t, service, first.ID, StatusRunning)

	// Pending tasks hold no slot and cannot be stopped
	if err := service.StopTask(second.ID); err == nil {
		t.Error("Expected error stopping a pending task, got nil")
	}
	if err := service.StopTask("missing"); err == nil {
		t.Error("Expected error stopping an unknown task, got nil")
	}

	if err := service.StopTask(first.ID); err != nil {
		t.Fatalf("StopTask failed: %v", err)
	}
	stopped := waitForStatus(t, service, first.ID, StatusStopped)
	if stopped.FinishedAt.IsZero() {
		t.Error("Expected FinishedAt to be set on stop")
	}

	// Stopping a finished task is an error
	if err := service.StopTask(first.ID); err == nil {
		t.Error("Expected error stopping a stopped task, got nil")
	}

	waitForStatus(t, service, second.ID, StatusRunning)
	if err := service.StopTask(second.ID); err != nil {
		t.Fatalf("StopTask failed: %v", err)
	}
	waitForStatus(t, service, second.ID, StatusStopped)
}

func TestRestartResets(t *testing.T) {
	service := fastService(1)

	task, _ := service.AddTask("loop.bin", testSmallSize)
	waitForStatus(t, service, task.ID, StatusCompleted)

	if err := service.RestartTask(task.ID); err != nil {
		t.Fatalf("RestartTask failed: %v", err)
	}
	waitForStatus(t, service, task.ID, StatusCompleted)

	// Restarting an unfinished task is an error
	busy, _ := service.AddTask("busy.bin", testBigSize)
	waitForStatus(t, service, busy.ID, StatusRunning)
	if err := service.RestartTask(busy.ID); err == nil {
		t.Error("Expected error restarting a running task, got nil")
	}
	if err := service.StopTask(busy.ID); err != nil {
		t.Fatalf("StopTask failed: %v", err)
	}
	waitForStatus(t, service, busy.ID, StatusStopped)
}

func TestRemoveTask(t *testing.T) {
	service := fastService(1)

	task, _ := service.AddTask("gone.bin", testSmallSize)
	waitForStatus(t, service, task.ID, StatusCompleted)

	if err := service.RemoveTask(task.ID); err != nil {
		t.Fatalf("RemoveTask failed: %v", err)
	}
	if _, exists := service.GetTask(task.ID); exists {
		t.Error("Expected removed task to be gone")
	}
	if got := len(service.GetAllTasks()); got != 0 {
		t.Errorf("Expected empty task list, got %d", got)
	}

	if err := service.RemoveTask(task.ID); err == nil {
		t.Error("Expected error removing an unknown task, got nil")
	}

	active, _ := service.AddTask("held.bin", testBigSize)
	waitForStatus(t, service, active.ID, StatusRunning)
	if err := service.RemoveTask(active.ID); err == nil {
		t.Error("Expected error removing an active task, got nil")
	}
	if err := service.StopTask(active.ID); err != nil {
		t.Fatalf("StopTask failed: %v", err)
	}
	waitForStatus(t, service, active.ID, StatusStopped)
}

func TestUpdateCallback(t *testing.T) {
	service := fastService(1)

	var mu sync.Mutex
	var statuses []Status

	service.SetUpdateCallback(func(task *Task) {
		mu.Lock()
		statuses = append(statuses, task.Status)
		mu.Unlock()
	})

	task, err := service.AddTask("observed.bin", testSmallSize)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	waitForStatus(t, service, task.ID, StatusCompleted)

	// The completion notification lands just after the status flips; poll
	// for it instead of racing the callback goroutine.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		n := len(statuses)
		last := Status("")
		if n > 0 {
			last = statuses[n-1]
		}
		mu.Unlock()
		if last == StatusCompleted {
			break
		}
		time.Sleep(2 * time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(statuses) == 0 {
		t.Fatal("Expected update callbacks, got none")
	}
	if statuses[len(statuses)-1] != StatusCompleted {
		t.Fatalf("Expected final callback to report Completed, got %s", statuses[len(statuses)-1])
	}

	seen := map[Status]bool{}
	for _, st := range statuses {
		seen[st] = true
	}
	for _, want := range []Status{StatusStarting, StatusRunning, StatusCompleted} {
		if !seen[want] {
			t.Errorf("Expected callbacks to include %s", want)
		}
	}
}

func TestLinkDropFailsAfterRetries(t *testing.T) {
	service := fastService(1)
	service.dropChance = 1

	task, _ := service.AddTask("flaky.bin", testBigSize)
	failed := waitForStatus(t, service, task.ID, StatusError)

	if failed.LastError == "" {
		t.Error("Expected LastError to be set")
	}
	if failed.Attempts != MaxRetries+1 {
		t.Errorf("Expected %d attempts, got %d", MaxRetries+1, failed.Attempts)
	}
	if failed.FinishedAt.IsZero() {
		t.Error("Expected FinishedAt to be set on failure")
	}
}

func TestGenerateTaskID(t *testing.T) {
	id1 := generateTaskID()
	id2 := generateTaskID()

	if id1 == id2 {
		t.Error("Expected different task IDs")
	}

	if id1 == "" || id2 == "" {
		t.Error("Expected non-empty task IDs")
	}

	// Check prefix
	if !strings.HasPrefix(id1, TaskIDPrefix) {
		t.Errorf("Expected ID to start with '%s', got: %s", TaskIDPrefix, id1)
	}

	// Check UUID format (task- + 36 chars for UUID)
	if len(id1) != len(TaskIDPrefix)+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len(TaskIDPrefix)+36, len(id1), id1)
	}
}
