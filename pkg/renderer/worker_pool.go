package renderer

import (
	"sync"

	"github.com/df07/go-grid-raytracer/pkg/core"
)

// RowTask represents a row rendering task for the worker pool
type RowTask struct {
	Y      int
	Pixels []core.Vec3 // The row's slice of the shared radiance buffer
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Y         int
	WorkerID  int
	Luminance float64 // Sum of pixel luminance across the row
	Samples   int
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	tracer      *rowTracer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of
// workers. The queues hold every row so submission never blocks.
func NewWorkerPool(tracer *rowTracer, rows int, numWorkers int) *WorkerPool {
	numWorkers = max(1, numWorkers)

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, rows),
		resultQueue: make(chan RowResult, rows),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			tracer:      tracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Rows are disjoint slices of the radiance buffer, so workers
		// never write the same pixel
		luminance, samples := w.tracer.renderRow(task.Y, task.Pixels)

		w.resultQueue <- RowResult{
			Y:         task.Y,
			WorkerID:  w.ID,
			Luminance: luminance,
			Samples:   samples,
		}
	}
}
