package transfer

// Transferer defines the interface for the transfer service.
type Transferer interface {
	SetUpdateCallback(func(*Task))
	AddTask(name string, totalBytes int64) (*Task, error)
	GetTask(id string) (*Task, bool)
	GetAllTasks() []*Task
	StopTask(id string) error
	PauseTask(id string) error
	ResumeTask(id string) error
	RestartTask(id string) error
	RemoveTask(id string) error

	// SetMaxParallel sets the maximum number of concurrently running transfers
	SetMaxParallel(max int)
}
