package market

import (
	"fmt"
	"math/big"
)

// Vault holds the non-negative escrow balance of a single transaction.
// Negative balances are impossible at this boundary: deposits reject
// negative amounts and withdrawals reject amounts exceeding the balance.
type Vault struct {
	balance *big.Int
}

// NewVault constructs a vault seeded with the provided balance. A nil or
// negative seed yields an empty vault.
func NewVault(balance *big.Int) *Vault {
	v := &Vault{balance: big.NewInt(0)}
	if balance != nil && balance.Sign() > 0 {
		v.balance = new(big.Int).Set(balance)
	}
	return v
}

// Balance returns a copy of the current balance.
func (v *Vault) Balance() *big.Int {
	if v == nil || v.balance == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(v.balance)
}

// Deposit adds amount to the balance. Negative amounts are rejected.
func (v *Vault) Deposit(amount *big.Int) error {
	if v == nil {
		return fmt.Errorf("market: nil vault")
	}
	if amount == nil || amount.Sign() == 0 {
		return nil
	}
	if amount.Sign() < 0 {
		return fmt.Errorf("market: negative deposit amount")
	}
	v.balance = new(big.Int).Add(v.Balance(), amount)
	return nil
}

// Withdraw removes amount from the balance and returns the withdrawn value.
func (v *Vault) Withdraw(amount *big.Int) (*big.Int, error) {
	if v == nil {
		return nil, fmt.Errorf("market: nil vault")
	}
	if amount == nil || amount.Sign() == 0 {
		return big.NewInt(0), nil
	}
	if amount.Sign() < 0 {
		return nil, fmt.Errorf("market: negative withdrawal amount")
	}
	if v.Balance().Cmp(amount) < 0 {
		return nil, ErrInsufficientEscrow
	}
	v.balance = new(big.Int).Sub(v.Balance(), amount)
	return new(big.Int).Set(amount), nil
}

// WithdrawAll zeroes the balance and returns the full withdrawn value.
func (v *Vault) WithdrawAll() *big.Int {
	if v == nil {
		return big.NewInt(0)
	}
	all := v.Balance()
	v.balance = big.NewInt(0)
	return all
}
