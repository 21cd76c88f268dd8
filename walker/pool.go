package walker

import (
	"sync"

	"github.com/gammazero/workerpool"
)

// pool limits evaluation work-in-progress and waits for a dynamic
// batch of work to complete. It uses WorkerPool to limit how many
// tasks run at once, and a wait group to know when all queued work is
// done before telling the pool to stop accepting new work and shut
// down.
type pool struct {
	wp *workerpool.WorkerPool
	wg *sync.WaitGroup
}

func newPool(parallel int) pool {
	return pool{wp: workerpool.New(parallel), wg: &sync.WaitGroup{}}
}

// Submit adds a new task to the pool. The task must call Done when it
// finishes.
func (p pool) Submit(f func()) {
	p.wg.Add(1)
	p.wp.Submit(f)
}

// Done marks that a task has completed.
func (p pool) Done() {
	p.wg.Done()
}

// Finish waits until no more tasks are running, then shuts down the
// worker pool.
func (p pool) Finish() {
	p.wg.Wait()
	p.wp.StopWait()
}
