package reputation

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// storage abstracts the subset of state manager functionality required by
// the reputation ledger.
type storage interface {
	KVGet(key []byte, out interface{}) (bool, error)
	KVPut(key []byte, value interface{}) error
}

var (
	reviewPrefix = []byte("reputation/review/")
	statsPrefix  = []byte("reputation/stats/")
)

func reviewKey(id string) []byte {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return nil
	}
	return []byte(fmt.Sprintf("%s%s", reviewPrefix, trimmed))
}

func statsKey(store [20]byte) []byte {
	return []byte(fmt.Sprintf("%s%x", statsPrefix, store))
}

var (
	// ErrReviewExists marks attempts to overwrite an immutable review.
	ErrReviewExists = errors.New("reputation: review already recorded")
	// ErrReviewNotFound marks missing review records.
	ErrReviewNotFound = errors.New("reputation: review not found")
	// ErrStatisticsNotFound marks stores with no settled transactions yet.
	ErrStatisticsNotFound = errors.New("reputation: statistics not found")
)

// Ledger persists item reviews and per-store statistics.
type Ledger struct {
	store storage
	nowFn func() int64
}

// NewLedger constructs a ledger bound to the provided storage backend.
func NewLedger(store storage) *Ledger {
	return &Ledger{
		store: store,
		nowFn: func() int64 { return time.Now().Unix() },
	}
}

// SetNowFunc overrides the wall clock used for record timestamps.
// Primarily leveraged in tests to provide deterministic timestamps.
func (l *Ledger) SetNowFunc(now func() int64) {
	if l == nil {
		return
	}
	if now == nil {
		l.nowFn = func() int64 { return time.Now().Unix() }
		return
	}
	l.nowFn = now
}

func (l *Ledger) now() int64 {
	if l == nil || l.nowFn == nil {
		return time.Now().Unix()
	}
	return l.nowFn()
}

// PutReview stores the review record. Reviews are immutable; a second
// write under the same identifier fails.
func (l *Ledger) PutReview(review *ItemReview) error {
	if l == nil || l.store == nil {
		return errors.New("reputation: storage unavailable")
	}
	if review == nil {
		return errors.New("reputation: review required")
	}
	sanitized := *review
	sanitized.Text = strings.TrimSpace(sanitized.Text)
	if sanitized.CreatedAt == 0 {
		sanitized.CreatedAt = l.now()
	}
	if err := sanitized.Validate(); err != nil {
		return err
	}
	key := reviewKey(sanitized.ID.String())
	if key == nil {
		return errors.New("reputation: review id required")
	}
	var existing ItemReview
	found, err := l.store.KVGet(key, &existing)
	if err != nil {
		return err
	}
	if found {
		return ErrReviewExists
	}
	return l.store.KVPut(key, &sanitized)
}

// GetReview retrieves a review by identifier.
func (l *Ledger) GetReview(id string) (*ItemReview, bool, error) {
	if l == nil || l.store == nil {
		return nil, false, errors.New("reputation: storage unavailable")
	}
	key := reviewKey(id)
	if key == nil {
		return nil, false, errors.New("reputation: review id required")
	}
	var stored ItemReview
	found, err := l.store.KVGet(key, &stored)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	return &stored, true, nil
}

// GetStatistics retrieves the aggregate record for a store.
func (l *Ledger) GetStatistics(store [20]byte) (*StoreStatistics, bool, error) {
	if l == nil || l.store == nil {
		return nil, false, errors.New("reputation: storage unavailable")
	}
	var stored StoreStatistics
	found, err := l.store.KVGet(statsKey(store), &stored)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	return stored.Clone(), true, nil
}

// ApplySale folds one settled transaction into the store's statistics,
// creating the record on first use. The running mean follows
// new_avg = (old_avg*(n-1) + rating) / n.
func (l *Ledger) ApplySale(store [20]byte, revenue *big.Int, rating uint8) (*StoreStatistics, error) {
	if l == nil || l.store == nil {
		return nil, errors.New("reputation: storage unavailable")
	}
	if store == ([20]byte{}) {
		return nil, errors.New("reputation: store required")
	}
	if revenue == nil || revenue.Sign() < 0 {
		return nil, errors.New("reputation: revenue must be non-negative")
	}
	if rating == 0 {
		return nil, errors.New("reputation: rating required")
	}
	stats, found, err := l.GetStatistics(store)
	if err != nil {
		return nil, err
	}
	if !found {
		stats = &StoreStatistics{Store: store, TotalRevenue: big.NewInt(0)}
	}
	stats.TotalTransactions++
	stats.TotalRevenue = new(big.Int).Add(stats.TotalRevenue, revenue)
	n := float64(stats.TotalTransactions)
	stats.AverageRating = (stats.AverageRating*(n-1) + float64(rating)) / n
	if err := l.store.KVPut(statsKey(store), stats); err != nil {
		return nil, err
	}
	return stats.Clone(), nil
}
