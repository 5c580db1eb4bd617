package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ytareq/portfolio/pkg/logger"
)

// ManagerConfig sizes the notification worker pool
type ManagerConfig struct {
	Workers      int
	PollInterval time.Duration
	BatchSize    int
}

// WorkerManager manages the pool of notification workers
type WorkerManager struct {
	cfg      ManagerConfig
	notifier Notifier
	queue    <-chan string

	mu      sync.Mutex
	workers []Worker
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewWorkerManager creates a new worker manager
func NewWorkerManager(cfg ManagerConfig, notifier Notifier, queue <-chan string) *WorkerManager {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 30 * time.Second
	}
	return &WorkerManager{
		cfg:      cfg,
		notifier: notifier,
		queue:    queue,
		workers:  make([]Worker, 0, cfg.Workers),
	}
}

// StartAll starts the configured number of workers bound to ctx
func (wm *WorkerManager) StartAll(ctx context.Context) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	if wm.cancel != nil {
		return fmt.Errorf("workers already started")
	}
	wm.ctx, wm.cancel = context.WithCancel(ctx)

	logger.Infof("Starting %d notification workers", wm.cfg.Workers)

	for i := 0; i < wm.cfg.Workers; i++ {
		worker := NewNotificationWorker(
			fmt.Sprintf("notification-%d", i+1),
			wm.notifier,
			wm.queue,
			wm.cfg.PollInterval,
			wm.cfg.BatchSize,
		)
		wm.workers = append(wm.workers, worker)
		wm.startWorker(worker)
	}

	logger.Infof("Started %d total workers", len(wm.workers))
	return nil
}

// StopAll gracefully stops all workers and waits for them to return
func (wm *WorkerManager) StopAll() error {
	wm.mu.Lock()
	if wm.cancel == nil {
		wm.mu.Unlock()
		return nil
	}
	logger.Info("Stopping all workers...")
	wm.cancel()
	for _, worker := range wm.workers {
		if err := worker.Stop(); err != nil {
			logger.WithError(err).WithField("worker_id", worker.GetWorkerID()).Error("Error stopping worker")
		}
	}
	wm.mu.Unlock()

	wm.wg.Wait()

	logger.Info("All workers stopped")
	return nil
}

// startWorker starts a single worker in a goroutine
func (wm *WorkerManager) startWorker(worker Worker) {
	wm.wg.Add(1)
	go func() {
		defer wm.wg.Done()
		if err := worker.Start(wm.ctx); err != nil {
			logger.WithError(err).WithField("worker_id", worker.GetWorkerID()).Error("Worker stopped with error")
		}
	}()
}

// GetWorkerStatus returns whether each worker is running
func (wm *WorkerManager) GetWorkerStatus() map[string]bool {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	status := make(map[string]bool, len(wm.workers))
	for _, worker := range wm.workers {
		status[worker.GetWorkerID()] = worker.IsRunning()
	}
	return status
}
