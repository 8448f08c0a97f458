package queue

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/barfigueiras/reservas/internal/core/ports"
	"github.com/barfigueiras/reservas/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// ErrQueueFull is passed to Processor.Reject when a worker has no room left.
var ErrQueueFull = errors.New("suggestion queue full")

// Processor runs one suggestion job, or settles it without running when the
// job cannot be queued.
type Processor interface {
	Process(ctx context.Context, job ports.SuggestionJob) error
	Reject(ctx context.Context, job ports.SuggestionJob, reason error) error
}

// Dispatcher routes suggestion jobs to a fixed set of workers sharded by
// reservation id, so jobs of one reservation run in request order.
type Dispatcher struct {
	workers []chan ports.SuggestionJob
	log     zerolog.Logger
	wg      sync.WaitGroup

	mu        sync.RWMutex
	ctx       context.Context
	processor Processor
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.SuggestionJob, numWorkers),
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.SuggestionJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context, p Processor) {
	d.mu.Lock()
	d.ctx, d.processor = ctx, p
	d.mu.Unlock()

	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch, p)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands a job to the worker responsible for its reservation. It never
// blocks the caller: when the worker channel is full the job is rejected on
// the spot, so queued jobs keep their order.
func (d *Dispatcher) Enqueue(job ports.SuggestionJob) {
	idx := d.shardIndex(job.Reservation.ID)
	select {
	case d.workers[idx] <- job:
	default:
		d.log.Warn().Int("worker_id", idx).Int64("reservation_id", job.Reservation.ID).Msg("suggestion queue full, rejecting job")
		d.reject(job)
	}
	metrics.SuggestionQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

func (d *Dispatcher) reject(job ports.SuggestionJob) {
	d.mu.RLock()
	ctx, p := d.ctx, d.processor
	d.mu.RUnlock()
	if p == nil {
		return
	}
	if err := p.Reject(context.WithoutCancel(ctx), job, ErrQueueFull); err != nil {
		d.log.Error().Err(err).Int64("reservation_id", job.Reservation.ID).Msg("failed to reject suggestion job")
	}
}

// shardIndex maps a reservation id deterministically to a worker index.
func (d *Dispatcher) shardIndex(reservationID int64) int {
	n := reservationID % int64(len(d.workers))
	if n < 0 {
		n = -n
	}
	return int(n)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.SuggestionJob, p Processor) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.SuggestionQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := p.Process(ctx, job); err != nil {
				d.log.Error().Err(err).
					Int64("reservation_id", job.Reservation.ID).
					Int("worker_id", id).
					Msg("suggestion processing failed")
			}
		}
	}
}
