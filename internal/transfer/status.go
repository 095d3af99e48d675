package transfer

// Status represents the status of a transfer task
type Status string

const (
	// StatusPending means the task is queued but not started
	StatusPending Status = "Pending"

	// StatusStarting means the task is in the process of starting
	StatusStarting Status = "Starting"

	// StatusRunning means the transfer is in progress
	StatusRunning Status = "Running"

	// StatusPausing means a pause was requested but not settled yet
	StatusPausing Status = "Pausing"

	// StatusPaused means the task is parked and can be resumed
	StatusPaused Status = "Paused"

	// StatusStopping means the task is in the process of stopping
	StatusStopping Status = "Stopping"

	// StatusStopped means the task was stopped by user
	StatusStopped Status = "Stopped"

	// StatusCompleted means the task finished successfully
	StatusCompleted Status = "Completed"

	// StatusError means the task failed with an error
	StatusError Status = "Error"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsActive returns true if the task holds a transfer slot
func (s Status) IsActive() bool {
	return s == StatusStarting || s == StatusRunning || s == StatusPausing || s == StatusStopping
}

// IsFinished returns true if the task is in a finished state (completed, stopped, or error)
func (s Status) IsFinished() bool {
	return s == StatusCompleted || s == StatusStopped || s == StatusError
}
