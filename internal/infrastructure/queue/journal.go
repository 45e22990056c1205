package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/bootify/catalog-api/internal/api/metrics"
	"github.com/bootify/catalog-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Journal fans catalog change records out to a fixed set of workers using
// consistent hashing on the product id, so entries for the same product are
// logged in the order they happened. Each record becomes one structured log
// line and one metrics increment; nothing is persisted here.
type Journal struct {
	workers []chan ports.ChangeRecord
	log     zerolog.Logger
}

// NewJournal creates a Journal with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewJournal(numWorkers int, log zerolog.Logger) *Journal {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	j := &Journal{
		workers: make([]chan ports.ChangeRecord, numWorkers),
		log:     log,
	}
	for i := range j.workers {
		j.workers[i] = make(chan ports.ChangeRecord, channelBuffer)
	}
	return j
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (j *Journal) Start(ctx context.Context) {
	for i, ch := range j.workers {
		go j.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a record to the worker responsible for its product id. It
// never blocks: if the shard's buffer is full (workers stopped or falling
// behind), the record is dropped and logged so request handling is not held
// up by the journal.
func (j *Journal) Enqueue(record ports.ChangeRecord) {
	select {
	case j.workers[j.shardIndex(record.ProductID)] <- record:
	default:
		j.log.Warn().
			Str("product_id", record.ProductID).
			Str("operation", record.Operation).
			Msg("journal buffer full, dropping change record")
	}
}

// shardIndex maps a product id deterministically to a worker index.
func (j *Journal) shardIndex(productID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(productID))
	return int(h.Sum32()) % len(j.workers)
}

func (j *Journal) runWorker(ctx context.Context, id int, ch <-chan ports.ChangeRecord) {
	for {
		select {
		case <-ctx.Done():
			return
		case record, ok := <-ch:
			if !ok {
				return
			}
			metrics.ProductWritesTotal.WithLabelValues(record.Operation).Inc()
			j.log.Info().
				Str("product_id", record.ProductID).
				Str("operation", record.Operation).
				Str("actor", record.Actor).
				Time("at", record.Timestamp).
				Int("worker_id", id).
				Msg("catalog change")
		}
	}
}
