package workers

// Workers runs a fixed set of workers in registration order and stops them in
// reverse order.
type Workers struct {
	workers []Worker
}

// NewWorkers groups the given workers. Nil entries are skipped.
func NewWorkers(workers ...Worker) *Workers {
	w := &Workers{workers: make([]Worker, 0, len(workers))}
	for _, worker := range workers {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops every worker that implements [Stopper], last started first.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if stopper, ok := w.workers[i].(Stopper); ok {
			stopper.Stop()
		}
	}
}
