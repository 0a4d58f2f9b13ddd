package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"sync"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"marketcore/core/types"
	"marketcore/native/market"
	"marketcore/storage"
)

var (
	transactionPrefix = []byte("market/tx/")
	vaultPrefix       = []byte("market/vault/")
	accountPrefix     = []byte("account/")

	errNilDatabase = errors.New("state: database not configured")
)

// Manager binds the market and reputation engines to a storage.Database.
// It persists transaction records, account balances and per-transaction
// custody vaults as JSON, and satisfies both the market engine's state
// interface and the reputation ledger's KV storage interface. All methods
// are safe for concurrent use.
type Manager struct {
	mu    sync.RWMutex
	db    storage.Database
	vault [20]byte
}

// NewManager constructs a manager over the provided database. The module
// vault account address is derived deterministically, so every manager on
// the same database observes the same custody account.
func NewManager(db storage.Database) (*Manager, error) {
	if db == nil {
		return nil, errNilDatabase
	}
	var vault [20]byte
	digest := ethcrypto.Keccak256([]byte("marketcore/module/vault"))
	copy(vault[:], digest[12:])
	return &Manager{db: db, vault: vault}, nil
}

func transactionKey(id [32]byte) []byte {
	return []byte(fmt.Sprintf("%s%x", transactionPrefix, id))
}

func vaultKey(id [32]byte) []byte {
	return []byte(fmt.Sprintf("%s%x", vaultPrefix, id))
}

func accountKey(addr []byte) []byte {
	return []byte(fmt.Sprintf("%s%x", accountPrefix, addr))
}

// TransactionPut sanitizes and persists the transaction record.
func (m *Manager) TransactionPut(tx *market.Transaction) error {
	sanitized, err := market.SanitizeTransaction(tx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, err := json.Marshal(sanitized)
	if err != nil {
		return err
	}
	return m.db.Put(transactionKey(sanitized.ID), raw)
}

// TransactionGet loads the transaction record for id.
func (m *Manager) TransactionGet(id [32]byte) (*market.Transaction, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, err := m.db.Get(transactionKey(id))
	if err != nil {
		return nil, false
	}
	tx := new(market.Transaction)
	if err := json.Unmarshal(raw, tx); err != nil {
		return nil, false
	}
	return tx, true
}

func (m *Manager) loadVault(id [32]byte) (*market.Vault, error) {
	raw, err := m.db.Get(vaultKey(id))
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return market.NewVault(nil), nil
		}
		return nil, err
	}
	balance := new(big.Int)
	if err := balance.UnmarshalText(raw); err != nil {
		return nil, err
	}
	return market.NewVault(balance), nil
}

func (m *Manager) saveVault(id [32]byte, v *market.Vault) error {
	raw, err := v.Balance().MarshalText()
	if err != nil {
		return err
	}
	return m.db.Put(vaultKey(id), raw)
}

// EscrowCredit adds amount to the transaction's custody vault.
func (m *Manager) EscrowCredit(id [32]byte, amount *big.Int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, err := m.loadVault(id)
	if err != nil {
		return err
	}
	if err := v.Deposit(amount); err != nil {
		return err
	}
	return m.saveVault(id, v)
}

// EscrowDebit removes amount from the transaction's custody vault. The
// vault enforces that the balance never goes negative.
func (m *Manager) EscrowDebit(id [32]byte, amount *big.Int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, err := m.loadVault(id)
	if err != nil {
		return err
	}
	if _, err := v.Withdraw(amount); err != nil {
		return err
	}
	return m.saveVault(id, v)
}

// EscrowBalance reports the current custody balance for the transaction.
func (m *Manager) EscrowBalance(id [32]byte) (*big.Int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, err := m.loadVault(id)
	if err != nil {
		return nil, err
	}
	return v.Balance(), nil
}

// EscrowVaultAddress returns the module's custody account address.
func (m *Manager) EscrowVaultAddress() ([20]byte, error) {
	return m.vault, nil
}

// GetAccount loads the ledger account for addr, returning a zeroed account
// when none exists yet.
func (m *Manager) GetAccount(addr []byte) (*types.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, err := m.db.Get(accountKey(addr))
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return &types.Account{Balance: big.NewInt(0)}, nil
		}
		return nil, err
	}
	acc := new(types.Account)
	if err := json.Unmarshal(raw, acc); err != nil {
		return nil, err
	}
	if acc.Balance == nil {
		acc.Balance = big.NewInt(0)
	}
	return acc, nil
}

// PutAccount persists the ledger account for addr.
func (m *Manager) PutAccount(addr []byte, account *types.Account) error {
	if account == nil {
		return errors.New("state: nil account")
	}
	if account.Balance != nil && account.Balance.Sign() < 0 {
		return errors.New("state: negative account balance")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, err := json.Marshal(account)
	if err != nil {
		return err
	}
	return m.db.Put(accountKey(addr), raw)
}

// KVPut stores an arbitrary JSON-encoded record. It backs the reputation
// ledger's storage interface.
func (m *Manager) KVPut(key []byte, value interface{}) error {
	if len(key) == 0 {
		return errors.New("state: key required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return m.db.Put(key, raw)
}

// KVGet loads a JSON-encoded record into out, reporting whether the key
// exists.
func (m *Manager) KVGet(key []byte, out interface{}) (bool, error) {
	if len(key) == 0 {
		return false, errors.New("state: key required")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, err := m.db.Get(key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

// Mint credits freshly issued value to an account. Hosts use it to seed
// balances; the engines themselves only ever move existing value.
func (m *Manager) Mint(addr []byte, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return errors.New("state: mint amount must be positive")
	}
	acc, err := m.GetAccount(addr)
	if err != nil {
		return err
	}
	acc.Balance = new(big.Int).Add(acc.Balance, amount)
	return m.PutAccount(addr, acc)
}
