package engine

import "sync"

// Executor dispatches independent per-column work. Columns are
// independent inputs (§5): an Executor may run them on multiple
// goroutines, but Run must return results in the same order as jobs.
type Executor interface {
	Run(jobs []func() ColumnMetadata) []ColumnMetadata
}

// SequentialExecutor runs jobs one at a time on the calling goroutine.
// It is the zero-value default when Analyze is called with a nil
// Executor.
type SequentialExecutor struct{}

// Run implements Executor.
func (SequentialExecutor) Run(jobs []func() ColumnMetadata) []ColumnMetadata {
	results := make([]ColumnMetadata, len(jobs))
	for i, job := range jobs {
		results[i] = job()
	}
	return results
}

// WorkerPoolExecutor runs jobs across a fixed number of goroutines.
// Each column is single-threaded, CPU-bound work with no I/O (§5), so
// a bounded worker count avoids oversubscribing the host.
type WorkerPoolExecutor struct {
	Workers int
}

// NewWorkerPoolExecutor returns a WorkerPoolExecutor with the given
// worker count, clamped to at least 1.
func NewWorkerPoolExecutor(workers int) *WorkerPoolExecutor {
	if workers < 1 {
		workers = 1
	}
	return &WorkerPoolExecutor{Workers: workers}
}

// Run implements Executor. Job i's result lands at results[i]
// regardless of completion order across workers.
func (e *WorkerPoolExecutor) Run(jobs []func() ColumnMetadata) []ColumnMetadata {
	results := make([]ColumnMetadata, len(jobs))
	if len(jobs) == 0 {
		return results
	}

	indices := make(chan int)
	var wg sync.WaitGroup

	workers := e.Workers
	if workers > len(jobs) {
		workers = len(jobs)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = jobs[i]()
			}
		}()
	}

	for i := range jobs {
		indices <- i
	}
	close(indices)
	wg.Wait()

	return results
}
