package reputation

import (
	"errors"
	"math/big"

	"github.com/google/uuid"
)

// ItemReview is the immutable record minted when a payment release
// completes. Records are write-once: the ledger rejects overwrites.
type ItemReview struct {
	ID        uuid.UUID `json:"id"`
	Customer  [20]byte  `json:"customer"`
	Store     [20]byte  `json:"store"`
	Text      string    `json:"text,omitempty"`
	Rating    uint8     `json:"rating"`
	CreatedAt int64     `json:"createdAt"`
}

// Validate ensures the review payload is well formed.
func (r *ItemReview) Validate() error {
	if r == nil {
		return errors.New("reputation: review nil")
	}
	if r.ID == uuid.Nil {
		return errors.New("reputation: review id required")
	}
	if r.Customer == ([20]byte{}) {
		return errors.New("reputation: customer required")
	}
	if r.Store == ([20]byte{}) {
		return errors.New("reputation: store required")
	}
	if r.Rating == 0 {
		return errors.New("reputation: rating required")
	}
	if r.CreatedAt <= 0 {
		return errors.New("reputation: createdAt must be positive")
	}
	return nil
}

// StoreStatistics aggregates the settled business of a single store. The
// average rating is a running mean over the ratings attached to releases.
type StoreStatistics struct {
	Store             [20]byte `json:"store"`
	TotalTransactions uint64   `json:"totalTransactions"`
	TotalRevenue      *big.Int `json:"totalRevenue"`
	AverageRating     float64  `json:"averageRating"`
}

// Clone returns a deep copy of the statistics record.
func (s *StoreStatistics) Clone() *StoreStatistics {
	if s == nil {
		return nil
	}
	clone := *s
	if s.TotalRevenue != nil {
		clone.TotalRevenue = new(big.Int).Set(s.TotalRevenue)
	} else {
		clone.TotalRevenue = big.NewInt(0)
	}
	return &clone
}
