package market

import (
	"fmt"
	"math/big"
	"strings"
)

// Status labels the lifecycle position of a transaction. Resolution,
// cancellation, refund and release reach "Open-like" labels: the episode is
// reset (store vacated, flags cleared) and the record may host a new
// acceptance without being reallocated.
type Status uint8

const (
	StatusOpen Status = iota
	StatusAccepted
	StatusFulfilled
	StatusDisputed
	StatusResolved
	StatusCompleted
	StatusCancelled
	StatusRefunded
)

// Valid reports whether the status value is within the supported range.
func (s Status) Valid() bool {
	return s <= StatusRefunded
}

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusAccepted:
		return "accepted"
	case StatusFulfilled:
		return "fulfilled"
	case StatusDisputed:
		return "disputed"
	case StatusResolved:
		return "resolved"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	case StatusRefunded:
		return "refunded"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Transaction is the single mutable record negotiated between a customer
// and a store. The store slot holds the zero address until an acceptance
// assigns it; episode resets vacate it again. An unrated record carries
// Rating == 0; valid ratings start at 1.
type Transaction struct {
	ID        [32]byte `json:"id"`
	Customer  [20]byte `json:"customer"`
	Store     [20]byte `json:"store"`
	Item      string   `json:"item"`
	Quantity  uint64   `json:"quantity"`
	Price     *big.Int `json:"price"`
	Disputed  bool     `json:"disputed"`
	Fulfilled bool     `json:"fulfilled"`
	Rating    uint8    `json:"rating,omitempty"`
	Status    Status   `json:"status"`
	CreatedAt int64    `json:"createdAt"`
	Deadline  int64    `json:"deadline"`
}

// StoreAssigned reports whether a store has accepted the current episode.
func (t *Transaction) StoreAssigned() bool {
	if t == nil {
		return false
	}
	return t.Store != ([20]byte{})
}

// Clone returns a deep copy of the transaction so callers can safely mutate
// the copy without affecting the stored instance.
func (t *Transaction) Clone() *Transaction {
	if t == nil {
		return nil
	}
	clone := *t
	if t.Price != nil {
		clone.Price = new(big.Int).Set(t.Price)
	} else {
		clone.Price = big.NewInt(0)
	}
	return &clone
}

// SanitizeTransaction validates and normalises the supplied record,
// returning a cloned instance with a trimmed item and a non-nil price. The
// function does not mutate the original value.
func SanitizeTransaction(t *Transaction) (*Transaction, error) {
	if t == nil {
		return nil, fmt.Errorf("market: nil transaction")
	}
	clone := t.Clone()
	clone.Item = strings.TrimSpace(clone.Item)
	if clone.Item == "" {
		return nil, fmt.Errorf("market: item required")
	}
	if clone.Customer == ([20]byte{}) {
		return nil, fmt.Errorf("market: customer required")
	}
	if clone.Price.Sign() < 0 {
		return nil, fmt.Errorf("market: price must be non-negative")
	}
	if !clone.Status.Valid() {
		return nil, fmt.Errorf("market: invalid status: %d", clone.Status)
	}
	if clone.Fulfilled && !clone.StoreAssigned() {
		return nil, fmt.Errorf("market: fulfilled transaction requires an assigned store")
	}
	if clone.Deadline < clone.CreatedAt {
		return nil, fmt.Errorf("market: deadline before creation time")
	}
	return clone, nil
}
