package workers

import (
	"context"
	"sync"
	"sync/atomic"
)

// Worker interface defines the contract for all workers
type Worker interface {
	// Start runs the worker until ctx is done or Stop is called
	Start(ctx context.Context) error

	// Stop gracefully stops the worker
	Stop() error

	// GetWorkerID returns the unique identifier for this worker
	GetWorkerID() string

	// IsRunning reports whether Start is currently executing
	IsRunning() bool
}

// BaseWorker provides common functionality for all workers
type BaseWorker struct {
	WorkerID string
	StopChan chan struct{}

	running  atomic.Bool
	stopOnce sync.Once
}

// NewBaseWorker creates a new base worker
func NewBaseWorker(workerID string) *BaseWorker {
	return &BaseWorker{
		WorkerID: workerID,
		StopChan: make(chan struct{}),
	}
}

func (w *BaseWorker) GetWorkerID() string {
	return w.WorkerID
}

// Stop signals the worker loop to return. Calling it more than once is safe.
func (w *BaseWorker) Stop() error {
	w.stopOnce.Do(func() {
		close(w.StopChan)
	})
	return nil
}

// IsRunning checks if the worker is currently running
func (w *BaseWorker) IsRunning() bool {
	return w.running.Load()
}

func (w *BaseWorker) setRunning(running bool) {
	w.running.Store(running)
}
