package transfer

import "testing"

func TestStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusPending, false},
		{StatusStarting, true},
		{StatusRunning, true},
		{StatusPausing, true},
		{StatusPaused, false},
		{StatusStopping, true},
		{StatusStopped, false},
		{StatusCompleted, false},
		{StatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("Status(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusPending, false},
		{StatusStarting, false},
		{StatusRunning, false},
		{StatusPausing, false},
		{StatusPaused, false},
		{StatusStopping, false},
		{StatusStopped, true},
		{StatusCompleted, true},
		{StatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("Status(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestStatus_String(t *testing.T) {
	status := StatusRunning
	expected := "Running"
	result := status.String()

	if result != expected {
		t.Errorf("Status.String() = %s, expected %s", result, expected)
	}
}
