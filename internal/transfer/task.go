package transfer

import (
	"fmt"
	"time"
)

// Task represents a single simulated transfer
type Task struct {
	ID         string
	Name       string
	Status     Status
	TotalBytes int64
	RecvBytes  int64   // received bytes, run ahead of verification
	DoneBytes  int64   // verified bytes, drive the primary fraction
	Progress   float64 // 0.0 to 1.0, verified fraction
	Percent    int     // 0 to 100
	Speed      string  // human readable speed (e.g., "1.2MB/s")
	ETASec     int     // ETA in seconds, -1 if unknown
	Attempts   int     // link drops survived so far
	LastError  string  // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetETAString returns ETA formatted as hh:mm:ss, or "—" if unknown
func (t *Task) GetETAString() string {
	if t.ETASec <= 0 {
		return "—"
	}

	hours := t.ETASec / 3600
	minutes := (t.ETASec % 3600) / 60
	seconds := t.ETASec % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetDisplayName returns the task name, or the ID when no name was given
func (t *Task) GetDisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.ID
}

// BufferFraction returns the received fraction in [0, 1]. It is never below
// the verified fraction, so a bar can use it directly as its buffer value.
func (t *Task) BufferFraction() float64 {
	if t.TotalBytes <= 0 {
		return 0
	}
	return float64(t.RecvBytes) / float64(t.TotalBytes)
}
