package transfer

import (
	"testing"
	"time"
)

func TestTask_GetETAString(t *testing.T) {
	tests := []struct {
		etaSec   int
		expected string
	}{
		{-1, "—"},
		{0, "—"},
		{30, "00:30"},
		{90, "01:30"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{7323, "02:02:03"},
	}

	for _, test := range tests {
		task := &Task{ETASec: test.etaSec}
		result := task.GetETAString()
		if result != test.expected {
			t.Errorf("GetETAString() with ETASec=%d = %s, expected %s", test.etaSec, result, test.expected)
		}
	}
}

func TestTask_GetDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{"payload-001.bin", "task-abc", "payload-001.bin"},
		{"", "task-abc", "task-abc"},
		{"dataset.tar", "task-def", "dataset.tar"},
	}

	for _, test := range tests {
		task := &Task{
			Name: test.name,
			ID:   test.id,
		}
		result := task.GetDisplayName()
		if result != test.expected {
			t.Errorf("GetDisplayName() with name='%s', id='%s' = '%s', expected '%s'",
				test.name, test.id, result, test.expected)
		}
	}
}

func TestTask_BufferFraction(t *testing.T) {
	tests := []struct {
		total    int64
		recv     int64
		expected float64
	}{
		{0, 0, 0},
		{1000, 0, 0},
		{1000, 250, 0.25},
		{1000, 1000, 1},
	}

	for _, test := range tests {
		task := &Task{TotalBytes: test.total, RecvBytes: test.recv}
		result := task.BufferFraction()
		if result != test.expected {
			t.Errorf("BufferFraction() with total=%d recv=%d = %v, expected %v",
				test.total, test.recv, result, test.expected)
		}
	}
}

func TestTask_Creation(t *testing.T) {
	now := time.Now()
	task := &Task{
		ID:         "test-123",
		Name:       "payload.bin",
		Status:     StatusPending,
		TotalBytes: 4096,
		Progress:   0.0,
		Percent:    0,
		Speed:      "",
		ETASec:     -1,
		StartedAt:  now,
	}

	if task.ID != "test-123" {
		t.Errorf("Expected ID to be 'test-123', got '%s'", task.ID)
	}

	if task.Status != StatusPending {
		t.Errorf("Expected status to be StatusPending, got %s", task.Status)
	}

	if !task.StartedAt.Equal(now) {
		t.Errorf("Expected StartedAt to be %v, got %v", now, task.StartedAt)
	}
}
