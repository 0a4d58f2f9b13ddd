package market

import (
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"marketcore/core/events"
	"marketcore/core/types"
	nativecommon "marketcore/native/common"
)

const moduleName = "market"

// DefaultMaxRating bounds customer ratings when the host does not override
// the limit. Valid ratings are 1..max inclusive.
const DefaultMaxRating uint8 = 5

type engineState interface {
	TransactionPut(*Transaction) error
	TransactionGet(id [32]byte) (*Transaction, bool)
	EscrowCredit(id [32]byte, amount *big.Int) error
	EscrowDebit(id [32]byte, amount *big.Int) error
	EscrowBalance(id [32]byte) (*big.Int, error)
	EscrowVaultAddress() ([20]byte, error)
	GetAccount(addr []byte) (*types.Account, error)
	PutAccount(addr []byte, account *types.Account) error
}

// ReviewSink receives the review and revenue emitted by a successful
// payment release. A nil sink is legal; releases then settle without side
// records.
type ReviewSink interface {
	RecordRelease(store, customer [20]byte, review string, rating uint8, revenue *big.Int) error
}

type marketEvent struct {
	evt *types.Event
}

func (e marketEvent) EventType() string {
	if e.evt == nil {
		return ""
	}
	return e.evt.Type
}

func (e marketEvent) Event() *types.Event { return e.evt }

// Engine owns the authoritative transaction status and orchestrates every
// mutating operation: each call authenticates the principal against the
// required role, applies the deadline policy, moves escrow custody through
// the module vault and emits a typed event. Operations are serialized by an
// internal lock, so authorization and custody checks observe one consistent
// snapshot per call and either fully apply or fully reject.
//
// Dispute resolution deliberately admits either counterpart (the customer
// or the assigned store); disputes involve both parties and neither may be
// stranded waiting on the other.
type Engine struct {
	mu        sync.RWMutex
	state     engineState
	emitter   events.Emitter
	reviews   ReviewSink
	pauses    nativecommon.PauseView
	nowFn     func() int64
	maxRating uint8
}

// NewEngine creates a market engine with a no-op emitter. Callers can
// override the emitter via SetEmitter.
func NewEngine() *Engine {
	return &Engine{
		emitter:   events.NoopEmitter{},
		nowFn:     func() int64 { return time.Now().Unix() },
		maxRating: DefaultMaxRating,
	}
}

// SetState configures the state backend used by the engine.
func (e *Engine) SetState(state engineState) { e.state = state }

// SetReviewSink configures the recorder fed by successful releases.
func (e *Engine) SetReviewSink(sink ReviewSink) { e.reviews = sink }

// SetPauses configures the administrative pause switch.
func (e *Engine) SetPauses(p nativecommon.PauseView) { e.pauses = p }

// SetMaxRating overrides the upper rating bound. Zero resets the default.
func (e *Engine) SetMaxRating(max uint8) {
	if max == 0 {
		e.maxRating = DefaultMaxRating
		return
	}
	e.maxRating = max
}

// SetNowFunc overrides the time source used by the engine. Primarily
// intended for tests to provide deterministic timestamps.
func (e *Engine) SetNowFunc(now func() int64) {
	if now == nil {
		e.nowFn = func() int64 { return time.Now().Unix() }
		return
	}
	e.nowFn = now
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

func (e *Engine) emit(event *types.Event) {
	if e == nil || e.emitter == nil || event == nil {
		return
	}
	e.emitter.Emit(marketEvent{evt: event})
}

func (e *Engine) now() int64 {
	if e == nil || e.nowFn == nil {
		return time.Now().Unix()
	}
	return e.nowFn()
}

func cloneBigInt(v *big.Int) *big.Int {
	if v == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(v)
}

func ensureAccount(acc *types.Account) *types.Account {
	if acc == nil {
		return &types.Account{Balance: big.NewInt(0)}
	}
	if acc.Balance == nil {
		acc.Balance = big.NewInt(0)
	}
	return acc
}

func (e *Engine) loadTransaction(id [32]byte) (*Transaction, error) {
	if e == nil || e.state == nil {
		return nil, errNilState
	}
	tx, ok := e.state.TransactionGet(id)
	if !ok {
		return nil, ErrNotFound
	}
	return tx, nil
}

func (e *Engine) storeTransaction(tx *Transaction) error {
	if e == nil || e.state == nil {
		return errNilState
	}
	return e.state.TransactionPut(tx)
}

// transfer moves ledger value between two accounts, all or nothing.
func (e *Engine) transfer(from, to [20]byte, amount *big.Int) error {
	if e == nil || e.state == nil {
		return errNilState
	}
	amt := cloneBigInt(amount)
	if amt.Sign() == 0 {
		return nil
	}
	if amt.Sign() < 0 {
		return fmt.Errorf("market: negative transfer amount")
	}
	fromAcc, err := e.state.GetAccount(from[:])
	if err != nil {
		return err
	}
	toAcc, err := e.state.GetAccount(to[:])
	if err != nil {
		return err
	}
	fromAcc = ensureAccount(fromAcc)
	toAcc = ensureAccount(toAcc)
	if fromAcc.Balance.Cmp(amt) < 0 {
		return fmt.Errorf("market: insufficient account balance")
	}
	fromAcc.Balance = new(big.Int).Sub(fromAcc.Balance, amt)
	toAcc.Balance = new(big.Int).Add(toAcc.Balance, amt)
	if err := e.state.PutAccount(from[:], fromAcc); err != nil {
		return err
	}
	return e.state.PutAccount(to[:], toAcc)
}

// escrowBalance reads the custody balance for the transaction.
func (e *Engine) escrowBalance(id [32]byte) (*big.Int, error) {
	if e == nil || e.state == nil {
		return nil, errNilState
	}
	balance, err := e.state.EscrowBalance(id)
	if err != nil {
		return nil, err
	}
	return cloneBigInt(balance), nil
}

// withdrawEscrow drains the full custody balance of the transaction to the
// recipient. A zero balance is a no-op and reports zero.
func (e *Engine) withdrawEscrow(id [32]byte, recipient [20]byte) (*big.Int, error) {
	balance, err := e.escrowBalance(id)
	if err != nil {
		return nil, err
	}
	if balance.Sign() == 0 {
		return balance, nil
	}
	vault, err := e.state.EscrowVaultAddress()
	if err != nil {
		return nil, err
	}
	if err := e.transfer(vault, recipient, balance); err != nil {
		return nil, err
	}
	if err := e.state.EscrowDebit(id, balance); err != nil {
		return nil, err
	}
	return balance, nil
}

// resetEpisode vacates the store slot and clears the per-episode flags so
// the record can host repeat business.
func resetEpisode(tx *Transaction, status Status) {
	tx.Store = [20]byte{}
	tx.Fulfilled = false
	tx.Disputed = false
	tx.Status = status
}

// Create initialises and persists a new transaction. Any principal may
// initiate as customer; no escrow is deposited yet. Identifiers are the
// keccak256 hash of the customer, the item digest and a caller-supplied
// nonce, so re-submitting an identical definition is idempotent.
func (e *Engine) Create(customer [20]byte, item string, quantity uint64, price *big.Int, duration int64, nonce [32]byte) (*Transaction, error) {
	if e == nil || e.state == nil {
		return nil, errNilState
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := nativecommon.Guard(e.pauses, moduleName); err != nil {
		return nil, err
	}
	if customer == ([20]byte{}) {
		return nil, fmt.Errorf("market: customer required")
	}
	trimmed := strings.TrimSpace(item)
	if trimmed == "" {
		return nil, fmt.Errorf("market: item required")
	}
	amt := cloneBigInt(price)
	if amt.Sign() < 0 {
		return nil, fmt.Errorf("market: price must be non-negative")
	}
	if duration <= 0 {
		return nil, fmt.Errorf("market: duration must be positive")
	}
	itemDigest := ethcrypto.Keccak256([]byte(trimmed))
	id := ethcrypto.Keccak256Hash(customer[:], itemDigest, nonce[:])
	now := e.now()
	if existing, ok := e.state.TransactionGet(id); ok {
		if existing.Customer != customer || existing.Item != trimmed || existing.Quantity != quantity || existing.Price.Cmp(amt) != 0 {
			return nil, fmt.Errorf("market: identifier already exists with different definition")
		}
		return existing, nil
	}
	tx := &Transaction{
		ID:        id,
		Customer:  customer,
		Item:      trimmed,
		Quantity:  quantity,
		Price:     amt,
		Status:    StatusOpen,
		CreatedAt: now,
		Deadline:  now + duration,
	}
	if err := e.storeTransaction(tx); err != nil {
		return nil, err
	}
	e.emit(NewCreatedEvent(tx))
	return tx.Clone(), nil
}

// Accept assigns the calling principal as the transaction's store. The
// store slot must be vacant; a second acceptance fails.
func (e *Engine) Accept(id [32]byte, caller [20]byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := nativecommon.Guard(e.pauses, moduleName); err != nil {
		return err
	}
	tx, err := e.loadTransaction(id)
	if err != nil {
		return err
	}
	if caller == ([20]byte{}) {
		return ErrNotStore
	}
	if tx.StoreAssigned() {
		return ErrInvalidTransaction
	}
	tx.Store = caller
	tx.Status = StatusAccepted
	if err := e.storeTransaction(tx); err != nil {
		return err
	}
	e.emit(NewAcceptedEvent(tx))
	return nil
}

// Fulfill marks the work done by the assigned store. Fulfilment must land
// strictly before the deadline.
func (e *Engine) Fulfill(id [32]byte, caller [20]byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := nativecommon.Guard(e.pauses, moduleName); err != nil {
		return err
	}
	tx, err := e.loadTransaction(id)
	if err != nil {
		return err
	}
	if !tx.StoreAssigned() {
		return ErrInvalidTransaction
	}
	if !authorized(tx, caller, RoleStore) {
		return ErrInvalidItem
	}
	if !beforeDeadline(e.now(), tx.Deadline) {
		return ErrDeadlinePassed
	}
	tx.Fulfilled = true
	tx.Status = StatusFulfilled
	if err := e.storeTransaction(tx); err != nil {
		return err
	}
	e.emit(NewFulfilledEvent(tx))
	return nil
}

// MarkComplete is the administrative assertion path to fulfilment. It
// requires the assigned store but, unlike Fulfill, performs no deadline
// check. The operation is idempotent.
func (e *Engine) MarkComplete(id [32]byte, caller [20]byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := nativecommon.Guard(e.pauses, moduleName); err != nil {
		return err
	}
	tx, err := e.loadTransaction(id)
	if err != nil {
		return err
	}
	if !tx.StoreAssigned() {
		return ErrInvalidTransaction
	}
	if !authorized(tx, caller, RoleStore) {
		return ErrInvalidItem
	}
	if tx.Fulfilled {
		return nil
	}
	tx.Fulfilled = true
	tx.Status = StatusFulfilled
	if err := e.storeTransaction(tx); err != nil {
		return err
	}
	e.emit(NewCompletedEvent(tx))
	return nil
}

// Dispute opens a dispute on the transaction. Only the customer may raise
// one, regardless of fulfilment state. The operation is idempotent.
func (e *Engine) Dispute(id [32]byte, caller [20]byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := nativecommon.Guard(e.pauses, moduleName); err != nil {
		return err
	}
	tx, err := e.loadTransaction(id)
	if err != nil {
		return err
	}
	if !authorized(tx, caller, RoleCustomer) {
		return ErrDispute
	}
	if tx.Disputed {
		return nil
	}
	tx.Disputed = true
	tx.Status = StatusDisputed
	if err := e.storeTransaction(tx); err != nil {
		return err
	}
	e.emit(NewDisputedEvent(tx))
	return nil
}

// ResolveDispute settles an open dispute. Either counterpart may resolve:
// resolved == true awards the full escrow to the store, otherwise it is
// refunded to the customer. The episode is reset afterwards.
func (e *Engine) ResolveDispute(id [32]byte, caller [20]byte, resolved bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := nativecommon.Guard(e.pauses, moduleName); err != nil {
		return err
	}
	tx, err := e.loadTransaction(id)
	if err != nil {
		return err
	}
	if !authorized(tx, caller, RoleCounterparty) {
		return ErrDispute
	}
	if !tx.Disputed {
		return ErrAlreadyResolved
	}
	if !tx.StoreAssigned() {
		return ErrInvalidTransaction
	}
	recipient := tx.Customer
	outcome := "refund"
	if resolved {
		recipient = tx.Store
		outcome = "release"
	}
	amount, err := e.withdrawEscrow(id, recipient)
	if err != nil {
		return err
	}
	resetEpisode(tx, StatusResolved)
	if err := e.storeTransaction(tx); err != nil {
		return err
	}
	e.emit(NewResolvedEvent(tx, outcome, amount))
	return nil
}

// ReleasePayment settles the escrow in favour of the store once fulfilment
// has happened and the deadline window has elapsed. Release before the
// deadline is rejected regardless of fulfilment state: the window doubles
// as the grace period for late disputes. The custody transfer and record
// reset commit before the review and statistics are recorded, so a sink
// failure is reported to the caller but never fabricates side records for
// value that did not move.
func (e *Engine) ReleasePayment(id [32]byte, caller [20]byte, review string, rating uint8) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := nativecommon.Guard(e.pauses, moduleName); err != nil {
		return err
	}
	tx, err := e.loadTransaction(id)
	if err != nil {
		return err
	}
	if !authorized(tx, caller, RoleCustomer) {
		return ErrNotStore
	}
	if rating < 1 || rating > e.maxRating {
		return ErrInvalidRating
	}
	if !tx.StoreAssigned() {
		return ErrInvalidTransaction
	}
	if !afterDeadline(e.now(), tx.Deadline) {
		return ErrDeadlinePassed
	}
	if !tx.Fulfilled || tx.Disputed {
		return ErrInvalidWithdrawal
	}
	balance, err := e.escrowBalance(id)
	if err != nil {
		return err
	}
	if balance.Sign() == 0 {
		return ErrInsufficientEscrow
	}
	store := tx.Store
	if _, err := e.withdrawEscrow(id, store); err != nil {
		return err
	}
	tx.Rating = rating
	resetEpisode(tx, StatusCompleted)
	if err := e.storeTransaction(tx); err != nil {
		return err
	}
	if e.reviews != nil {
		if err := e.reviews.RecordRelease(store, tx.Customer, review, rating, balance); err != nil {
			return err
		}
	}
	e.emit(NewReleasedEvent(tx, store, balance))
	return nil
}

// AddFunds deposits amount from the customer's account into the
// transaction's escrow custody. Only the customer may fund the escrow and
// the deposit is bounded solely by the customer's available balance.
func (e *Engine) AddFunds(id [32]byte, caller [20]byte, amount *big.Int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := nativecommon.Guard(e.pauses, moduleName); err != nil {
		return err
	}
	tx, err := e.loadTransaction(id)
	if err != nil {
		return err
	}
	if !authorized(tx, caller, RoleCustomer) {
		return ErrNotStore
	}
	amt := cloneBigInt(amount)
	if amt.Sign() <= 0 {
		return fmt.Errorf("market: amount must be positive")
	}
	vault, err := e.state.EscrowVaultAddress()
	if err != nil {
		return err
	}
	if err := e.transfer(tx.Customer, vault, amt); err != nil {
		return err
	}
	if err := e.state.EscrowCredit(id, amt); err != nil {
		return err
	}
	e.emit(NewFundedEvent(tx, amt))
	return nil
}

// Cancel abandons the current episode. Either counterpart may cancel; the
// escrow is refunded to the customer only while a store is assigned with no
// fulfilment and no open dispute. The episode is always reset, so funds
// left in custody after a post-fulfilment cancel stay claimable by the
// customer through RequestRefund.
func (e *Engine) Cancel(id [32]byte, caller [20]byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := nativecommon.Guard(e.pauses, moduleName); err != nil {
		return err
	}
	tx, err := e.loadTransaction(id)
	if err != nil {
		return err
	}
	if !authorized(tx, caller, RoleCounterparty) {
		return ErrNotStore
	}
	amount := big.NewInt(0)
	if tx.StoreAssigned() && !tx.Fulfilled && !tx.Disputed {
		amount, err = e.withdrawEscrow(id, tx.Customer)
		if err != nil {
			return err
		}
	}
	resetEpisode(tx, StatusCancelled)
	if err := e.storeTransaction(tx); err != nil {
		return err
	}
	e.emit(NewCancelledEvent(tx, amount))
	return nil
}

// RequestRefund returns the full escrow to the customer. Refunds are
// blocked once the store has fulfilled or while a dispute is open.
func (e *Engine) RequestRefund(id [32]byte, caller [20]byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := nativecommon.Guard(e.pauses, moduleName); err != nil {
		return err
	}
	tx, err := e.loadTransaction(id)
	if err != nil {
		return err
	}
	if !authorized(tx, caller, RoleCustomer) {
		return ErrNotStore
	}
	if tx.Fulfilled || tx.Disputed {
		return ErrInvalidWithdrawal
	}
	amount, err := e.withdrawEscrow(id, tx.Customer)
	if err != nil {
		return err
	}
	resetEpisode(tx, StatusRefunded)
	if err := e.storeTransaction(tx); err != nil {
		return err
	}
	e.emit(NewRefundedEvent(tx, amount))
	return nil
}

// RateStore records a rating outside the release flow. The rating is kept
// on the transaction record only; statistics move exclusively on release.
// A later call overwrites the previous value, so the record carries the
// customer's most recent verdict rather than the first one.
func (e *Engine) RateStore(id [32]byte, caller [20]byte, rating uint8) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := nativecommon.Guard(e.pauses, moduleName); err != nil {
		return err
	}
	tx, err := e.loadTransaction(id)
	if err != nil {
		return err
	}
	if !authorized(tx, caller, RoleCustomer) {
		return ErrNotStore
	}
	if rating < 1 || rating > e.maxRating {
		return ErrInvalidRating
	}
	tx.Rating = rating
	if err := e.storeTransaction(tx); err != nil {
		return err
	}
	e.emit(NewRatedEvent(tx))
	return nil
}

// updateDetail applies a customer-only mutation that is legal only while
// the store slot is vacant; accepted terms are frozen for fairness to the
// store.
func (e *Engine) updateDetail(id [32]byte, caller [20]byte, field string, mutate func(*Transaction) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := nativecommon.Guard(e.pauses, moduleName); err != nil {
		return err
	}
	tx, err := e.loadTransaction(id)
	if err != nil {
		return err
	}
	if !authorized(tx, caller, RoleCustomer) {
		return ErrNotStore
	}
	if tx.StoreAssigned() {
		return ErrInvalidTransaction
	}
	if err := mutate(tx); err != nil {
		return err
	}
	if err := e.storeTransaction(tx); err != nil {
		return err
	}
	e.emit(NewUpdatedEvent(tx, field))
	return nil
}

// UpdateItem replaces the item description before acceptance.
func (e *Engine) UpdateItem(id [32]byte, caller [20]byte, item string) error {
	return e.updateDetail(id, caller, "item", func(tx *Transaction) error {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			return fmt.Errorf("market: item required")
		}
		tx.Item = trimmed
		return nil
	})
}

// UpdatePrice replaces the price before acceptance.
func (e *Engine) UpdatePrice(id [32]byte, caller [20]byte, price *big.Int) error {
	return e.updateDetail(id, caller, "price", func(tx *Transaction) error {
		amt := cloneBigInt(price)
		if amt.Sign() < 0 {
			return fmt.Errorf("market: price must be non-negative")
		}
		tx.Price = amt
		return nil
	})
}

// UpdateQuantity replaces the quantity before acceptance.
func (e *Engine) UpdateQuantity(id [32]byte, caller [20]byte, quantity uint64) error {
	return e.updateDetail(id, caller, "quantity", func(tx *Transaction) error {
		tx.Quantity = quantity
		return nil
	})
}

// UpdateDeadline replaces the deadline before acceptance. Once a store has
// accepted, only ExtendDeadline may move it.
func (e *Engine) UpdateDeadline(id [32]byte, caller [20]byte, deadline int64) error {
	return e.updateDetail(id, caller, "deadline", func(tx *Transaction) error {
		if deadline < tx.CreatedAt {
			return fmt.Errorf("market: deadline before creation time")
		}
		tx.Deadline = deadline
		return nil
	})
}

// UpdateStatus overrides the status label before acceptance.
func (e *Engine) UpdateStatus(id [32]byte, caller [20]byte, status Status) error {
	return e.updateDetail(id, caller, "status", func(tx *Transaction) error {
		if !status.Valid() {
			return fmt.Errorf("market: invalid status: %d", status)
		}
		tx.Status = status
		return nil
	})
}

// ExtendDeadline pushes the deadline out by extension. Only the assigned
// store may extend, and there is no upper bound: the window is within the
// accepting store's control.
func (e *Engine) ExtendDeadline(id [32]byte, caller [20]byte, extension int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := nativecommon.Guard(e.pauses, moduleName); err != nil {
		return err
	}
	tx, err := e.loadTransaction(id)
	if err != nil {
		return err
	}
	if !authorized(tx, caller, RoleStore) {
		return ErrNotStore
	}
	if extension <= 0 {
		return fmt.Errorf("market: extension must be positive")
	}
	tx.Deadline += extension
	if err := e.storeTransaction(tx); err != nil {
		return err
	}
	e.emit(NewDeadlineExtendedEvent(tx))
	return nil
}

// PartialRefund returns amount from custody to the customer without
// touching the transaction status or resetting the episode. Only the
// assigned store may concede a partial refund.
func (e *Engine) PartialRefund(id [32]byte, caller [20]byte, amount *big.Int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := nativecommon.Guard(e.pauses, moduleName); err != nil {
		return err
	}
	tx, err := e.loadTransaction(id)
	if err != nil {
		return err
	}
	if !authorized(tx, caller, RoleStore) {
		return ErrNotStore
	}
	amt := cloneBigInt(amount)
	if amt.Sign() <= 0 {
		return fmt.Errorf("market: amount must be positive")
	}
	balance, err := e.escrowBalance(id)
	if err != nil {
		return err
	}
	if balance.Cmp(amt) < 0 {
		return ErrInsufficientEscrow
	}
	vault, err := e.state.EscrowVaultAddress()
	if err != nil {
		return err
	}
	if err := e.transfer(vault, tx.Customer, amt); err != nil {
		return err
	}
	if err := e.state.EscrowDebit(id, amt); err != nil {
		return err
	}
	e.emit(NewPartialRefundEvent(tx, amt))
	return nil
}

// Details is the read-only snapshot returned by GetDetails, pairing the
// transaction record with its current custody balance.
type Details struct {
	Transaction *Transaction
	Escrow      *big.Int
}

// GetDetails returns the full transaction snapshot. Reads are pure and
// authorization-free.
func (e *Engine) GetDetails(id [32]byte) (*Details, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	tx, err := e.loadTransaction(id)
	if err != nil {
		return nil, err
	}
	balance, err := e.escrowBalance(id)
	if err != nil {
		return nil, err
	}
	return &Details{Transaction: tx.Clone(), Escrow: balance}, nil
}

// GetItem returns the item description.
func (e *Engine) GetItem(id [32]byte) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	tx, err := e.loadTransaction(id)
	if err != nil {
		return "", err
	}
	return tx.Item, nil
}

// GetPrice returns the listed price.
func (e *Engine) GetPrice(id [32]byte) (*big.Int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	tx, err := e.loadTransaction(id)
	if err != nil {
		return nil, err
	}
	return cloneBigInt(tx.Price), nil
}

// GetStatus returns the current lifecycle status.
func (e *Engine) GetStatus(id [32]byte) (Status, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	tx, err := e.loadTransaction(id)
	if err != nil {
		return 0, err
	}
	return tx.Status, nil
}

// GetDeadline returns the current deadline.
func (e *Engine) GetDeadline(id [32]byte) (int64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	tx, err := e.loadTransaction(id)
	if err != nil {
		return 0, err
	}
	return tx.Deadline, nil
}
