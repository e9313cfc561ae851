package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/websap/websap-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes reservation side effects to a fixed set of workers
// using consistent hashing on the restaurant id, so notifications for
// one restaurant are processed in arrival order. Enqueueing never
// blocks the request that created the reservation beyond the channel
// buffer; processing failures are logged and dropped.
type Dispatcher struct {
	workers   []chan ports.NewReservationEvent
	processor ports.NotificationProcessor
	log       zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, processor ports.NotificationProcessor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan ports.NewReservationEvent, numWorkers),
		processor: processor,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.NewReservationEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify sends an event to the worker responsible for its restaurant.
func (d *Dispatcher) Notify(event ports.NewReservationEvent) {
	d.workers[d.shardIndex(event.Reservation.RestaurantID)] <- event
}

// shardIndex maps a restaurant deterministically to a worker index.
func (d *Dispatcher) shardIndex(restaurantID int64) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(restaurantID, 10)))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.NewReservationEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.processor.Process(ctx, event); err != nil {
				d.log.Error().Err(err).
					Str("reservation_id", event.Reservation.ID).
					Int("worker_id", id).
					Msg("reservation notification failed")
			}
		}
	}
}
