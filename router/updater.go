package router

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrQueueFull   = errors.New("incident queue is full")
	ErrQueueClosed = errors.New("incident queue is closed")
)

const DEFAULT_QUEUE_SIZE = 1024

// IncidentJob is one classified incident waiting to be applied.
type IncidentJob struct {
	ReportID string
	Category string
	Lat      float64
	Lon      float64
	Enqueued time.Time
}

type IncidentJobResult struct {
	Job    IncidentJob
	Result *IncidentResult
	Err    error
}

// AppliedFunc is called by the queue worker after each job, in job order.
type AppliedFunc func(IncidentJobResult)

type queuedJob struct {
	job  IncidentJob
	done chan IncidentJobResult
}

// IncidentQueue applies incident jobs on a single worker goroutine, one at a
// time and in FIFO order. Enqueue never waits for the update.
type IncidentQueue struct {
	router *Router
	jobs   chan queuedJob
	hooks  []AppliedFunc

	mu      sync.RWMutex
	closed  bool
	started bool
	wg      sync.WaitGroup
}

func NewIncidentQueue(r *Router, size int, hooks ...AppliedFunc) *IncidentQueue {
	if size <= 0 {
		size = DEFAULT_QUEUE_SIZE
	}
	return &IncidentQueue{
		router: r,
		jobs:   make(chan queuedJob, size),
		hooks:  hooks,
	}
}

// Start launches the worker. Calling it more than once has no effect.
func (q *IncidentQueue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started || q.closed {
		return
	}
	q.started = true
	q.wg.Add(1)
	go q.run()
}

func (q *IncidentQueue) run() {
	defer q.wg.Done()
	for qj := range q.jobs {
		res := IncidentJobResult{Job: qj.job}
		res.Result, res.Err = q.router.applyIncident(qj.job.Category, qj.job.Lat, qj.job.Lon)
		if res.Err != nil {
			log.Errorf("failed to apply incident %s: %v", qj.job.ReportID, res.Err)
		}
		for _, hook := range q.hooks {
			hook(res)
		}
		qj.done <- res
		close(qj.done)
	}
}

// Enqueue adds job to the queue and returns a channel that receives the
// result once the job is applied.
func (q *IncidentQueue) Enqueue(job IncidentJob) (<-chan IncidentJobResult, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return nil, ErrQueueClosed
	}
	if job.Enqueued.IsZero() {
		job.Enqueued = time.Now()
	}
	done := make(chan IncidentJobResult, 1)
	select {
	case q.jobs <- queuedJob{job: job, done: done}:
		return done, nil
	default:
		return nil, ErrQueueFull
	}
}

// Len is the number of jobs waiting for the worker.
func (q *IncidentQueue) Len() int {
	return len(q.jobs)
}

// Close stops accepting jobs and waits until the queued ones are applied.
func (q *IncidentQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	started := q.started
	q.mu.Unlock()
	if !started {
		// drain on the caller so pending results are still delivered
		q.wg.Add(1)
		q.run()
		return
	}
	q.wg.Wait()
}
