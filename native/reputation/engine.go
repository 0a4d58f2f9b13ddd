package reputation

import (
	"math/big"
	"sync"

	"github.com/google/uuid"

	"marketcore/core/events"
	"marketcore/core/types"
)

type reputationEvent struct {
	evt *types.Event
}

func (e reputationEvent) EventType() string {
	if e.evt == nil {
		return ""
	}
	return e.evt.Type
}

func (e reputationEvent) Event() *types.Event { return e.evt }

// Engine records the side effects of settled marketplace transactions:
// immutable item reviews and per-store running statistics. The statistics
// read-modify-write is serialized, so concurrent releases for the same
// store fold in without losing updates.
type Engine struct {
	mu      sync.Mutex
	ledger  *Ledger
	emitter events.Emitter
	newID   func() uuid.UUID
}

// NewEngine constructs an engine backed by the provided storage backend.
func NewEngine(store storage) *Engine {
	var ledger *Ledger
	if store != nil {
		ledger = NewLedger(store)
	}
	return &Engine{
		ledger:  ledger,
		emitter: events.NoopEmitter{},
		newID:   uuid.New,
	}
}

// SetEmitter configures the event emitter used by the engine. Passing nil
// resets the emitter to a no-op implementation.
func (e *Engine) SetEmitter(emitter events.Emitter) {
	if emitter == nil {
		e.emitter = events.NoopEmitter{}
		return
	}
	e.emitter = emitter
}

// SetNowFunc overrides the wall clock used by the underlying ledger.
func (e *Engine) SetNowFunc(now func() int64) {
	if e == nil || e.ledger == nil {
		return
	}
	e.ledger.SetNowFunc(now)
}

// SetIDFunc overrides review identifier generation, primarily for tests.
func (e *Engine) SetIDFunc(newID func() uuid.UUID) {
	if newID == nil {
		e.newID = uuid.New
		return
	}
	e.newID = newID
}

func (e *Engine) emit(evt *types.Event) {
	if e == nil || e.emitter == nil || evt == nil {
		return
	}
	e.emitter.Emit(reputationEvent{evt: evt})
}

// RecordRelease mints the review for a settled transaction and folds the
// revenue and rating into the store's statistics.
func (e *Engine) RecordRelease(store, customer [20]byte, review string, rating uint8, revenue *big.Int) error {
	if e == nil || e.ledger == nil {
		return ErrReviewNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	rec := &ItemReview{
		ID:        e.newID(),
		Customer:  customer,
		Store:     store,
		Text:      review,
		Rating:    rating,
		CreatedAt: e.ledger.now(),
	}
	if err := e.ledger.PutReview(rec); err != nil {
		return err
	}
	stats, err := e.ledger.ApplySale(store, revenue, rating)
	if err != nil {
		return err
	}
	e.emit(NewReviewRecordedEvent(rec))
	e.emit(NewStatisticsUpdatedEvent(stats))
	return nil
}

// GetReview fetches a stored review by identifier.
func (e *Engine) GetReview(id string) (*ItemReview, bool, error) {
	if e == nil || e.ledger == nil {
		return nil, false, ErrReviewNotFound
	}
	return e.ledger.GetReview(id)
}

// GetStatistics fetches the aggregate record for a store.
func (e *Engine) GetStatistics(store [20]byte) (*StoreStatistics, bool, error) {
	if e == nil || e.ledger == nil {
		return nil, false, ErrStatisticsNotFound
	}
	return e.ledger.GetStatistics(store)
}
