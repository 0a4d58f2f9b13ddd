package market

import "errors"

// Failure taxonomy surfaced by the engine. Every violation is detected
// synchronously and aborts the whole operation; callers correct and retry.
var (
	// ErrNotFound marks a transaction id with no stored record.
	ErrNotFound = errors.New("market: transaction not found")
	// ErrInvalidTransaction marks operations that require the store slot to
	// be vacant (accept, detail updates) when it is already assigned, or
	// require an assigned store when the slot is vacant.
	ErrInvalidTransaction = errors.New("market: invalid transaction state")
	// ErrInvalidItem marks fulfilment-scoped calls from a principal that is
	// not the assigned store.
	ErrInvalidItem = errors.New("market: caller cannot fulfil item")
	// ErrDispute marks dispute management calls from a principal that is
	// neither counterpart of the transaction.
	ErrDispute = errors.New("market: caller cannot manage dispute")
	// ErrAlreadyResolved marks dispute resolution when no dispute is open.
	ErrAlreadyResolved = errors.New("market: dispute already resolved")
	// ErrNotStore marks the generic role failure for customer-only and
	// party-only operations.
	ErrNotStore = errors.New("market: caller is not a transaction party")
	// ErrInvalidWithdrawal marks refund or release attempts in a state that
	// forbids moving the escrow (fulfilled refunds, disputed withdrawals).
	ErrInvalidWithdrawal = errors.New("market: withdrawal not permitted")
	// ErrDeadlinePassed marks deadline violations in either direction:
	// fulfilment after the window, release before it has elapsed.
	ErrDeadlinePassed = errors.New("market: deadline constraint violated")
	// ErrInsufficientEscrow marks withdrawals exceeding the custody balance
	// and releases against an empty escrow.
	ErrInsufficientEscrow = errors.New("market: insufficient escrow balance")
	// ErrInvalidRating marks ratings outside the configured bound.
	ErrInvalidRating = errors.New("market: rating out of range")

	errNilState = errors.New("market: engine state not configured")
)
