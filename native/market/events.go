package market

import (
	"encoding/hex"
	"math/big"
	"strconv"

	"marketcore/core/types"
)

const (
	EventTypeTransactionCreated   = "market.transaction.created"
	EventTypeTransactionAccepted  = "market.transaction.accepted"
	EventTypeTransactionFunded    = "market.transaction.funded"
	EventTypeTransactionFulfilled = "market.transaction.fulfilled"
	EventTypeTransactionCompleted = "market.transaction.completed"
	EventTypeTransactionDisputed  = "market.transaction.disputed"
	EventTypeTransactionResolved  = "market.transaction.resolved"
	EventTypeTransactionReleased  = "market.transaction.released"
	EventTypeTransactionRefunded  = "market.transaction.refunded"
	EventTypePartialRefund        = "market.transaction.partial_refund"
	EventTypeTransactionCancelled = "market.transaction.cancelled"
	EventTypeTransactionUpdated   = "market.transaction.updated"
	EventTypeDeadlineExtended     = "market.transaction.deadline_extended"
	EventTypeTransactionRated     = "market.transaction.rated"
)

// NewCreatedEvent returns the canonical event payload for a newly created
// transaction.
func NewCreatedEvent(t *Transaction) *types.Event {
	return newTransactionEvent(EventTypeTransactionCreated, t, nil)
}

// NewAcceptedEvent returns the payload emitted when a store accepts.
func NewAcceptedEvent(t *Transaction) *types.Event {
	return newTransactionEvent(EventTypeTransactionAccepted, t, nil)
}

// NewFundedEvent returns the payload emitted when the customer deposits
// into escrow custody.
func NewFundedEvent(t *Transaction, amount *big.Int) *types.Event {
	return newTransactionEvent(EventTypeTransactionFunded, t, amountAttrs(amount))
}

// NewFulfilledEvent returns the payload emitted when the store fulfils
// inside the deadline window.
func NewFulfilledEvent(t *Transaction) *types.Event {
	return newTransactionEvent(EventTypeTransactionFulfilled, t, nil)
}

// NewCompletedEvent returns the payload emitted by the administrative
// completion path.
func NewCompletedEvent(t *Transaction) *types.Event {
	return newTransactionEvent(EventTypeTransactionCompleted, t, nil)
}

// NewDisputedEvent returns the payload emitted when a dispute opens.
func NewDisputedEvent(t *Transaction) *types.Event {
	return newTransactionEvent(EventTypeTransactionDisputed, t, nil)
}

// NewResolvedEvent returns the payload emitted when a dispute is resolved,
// carrying the outcome and the amount moved out of custody.
func NewResolvedEvent(t *Transaction, outcome string, amount *big.Int) *types.Event {
	extra := amountAttrs(amount)
	extra["outcome"] = outcome
	return newTransactionEvent(EventTypeTransactionResolved, t, extra)
}

// NewReleasedEvent returns the payload emitted when escrow is released to
// the store. The store slot on the record is already vacated, so the
// recipient travels explicitly.
func NewReleasedEvent(t *Transaction, store [20]byte, amount *big.Int) *types.Event {
	extra := amountAttrs(amount)
	extra["recipient"] = hex.EncodeToString(store[:])
	return newTransactionEvent(EventTypeTransactionReleased, t, extra)
}

// NewRefundedEvent returns the payload emitted when the escrow returns to
// the customer in full.
func NewRefundedEvent(t *Transaction, amount *big.Int) *types.Event {
	return newTransactionEvent(EventTypeTransactionRefunded, t, amountAttrs(amount))
}

// NewPartialRefundEvent returns the payload emitted when the store concedes
// part of the escrow.
func NewPartialRefundEvent(t *Transaction, amount *big.Int) *types.Event {
	return newTransactionEvent(EventTypePartialRefund, t, amountAttrs(amount))
}

// NewCancelledEvent returns the payload emitted when an episode is
// abandoned.
func NewCancelledEvent(t *Transaction, refunded *big.Int) *types.Event {
	return newTransactionEvent(EventTypeTransactionCancelled, t, amountAttrs(refunded))
}

// NewUpdatedEvent returns the payload emitted by a pre-acceptance detail
// update, naming the mutated field.
func NewUpdatedEvent(t *Transaction, field string) *types.Event {
	return newTransactionEvent(EventTypeTransactionUpdated, t, map[string]string{"field": field})
}

// NewDeadlineExtendedEvent returns the payload emitted when the store
// extends its window.
func NewDeadlineExtendedEvent(t *Transaction) *types.Event {
	return newTransactionEvent(EventTypeDeadlineExtended, t, nil)
}

// NewRatedEvent returns the payload emitted by the standalone rating path.
func NewRatedEvent(t *Transaction) *types.Event {
	return newTransactionEvent(EventTypeTransactionRated, t, nil)
}

func amountAttrs(amount *big.Int) map[string]string {
	attrs := make(map[string]string)
	if amount == nil {
		attrs["amount"] = "0"
		return attrs
	}
	attrs["amount"] = amount.String()
	return attrs
}

func newTransactionEvent(eventType string, t *Transaction, extra map[string]string) *types.Event {
	attrs := make(map[string]string)
	if t == nil {
		return &types.Event{Type: eventType, Attributes: attrs}
	}
	attrs["id"] = hex.EncodeToString(t.ID[:])
	attrs["customer"] = hex.EncodeToString(t.Customer[:])
	if t.StoreAssigned() {
		attrs["store"] = hex.EncodeToString(t.Store[:])
	}
	attrs["item"] = t.Item
	attrs["quantity"] = strconv.FormatUint(t.Quantity, 10)
	if t.Price != nil {
		attrs["price"] = t.Price.String()
	}
	attrs["status"] = t.Status.String()
	attrs["disputed"] = strconv.FormatBool(t.Disputed)
	attrs["fulfilled"] = strconv.FormatBool(t.Fulfilled)
	if t.Rating > 0 {
		attrs["rating"] = strconv.FormatUint(uint64(t.Rating), 10)
	}
	attrs["createdAt"] = strconv.FormatInt(t.CreatedAt, 10)
	attrs["deadline"] = strconv.FormatInt(t.Deadline, 10)
	for k, v := range extra {
		attrs[k] = v
	}
	return &types.Event{Type: eventType, Attributes: attrs}
}
