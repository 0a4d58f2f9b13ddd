package types

import "math/big"

// Account is the ledger record backing a principal. The engine only ever
// moves the spendable balance; everything else a host tracks about an
// account lives outside this module.
type Account struct {
	Nonce    uint64   `json:"nonce"`
	Balance  *big.Int `json:"balance"`
	Username string   `json:"username,omitempty"`
}

// Clone returns a deep copy of the account so callers can mutate the copy
// without touching the stored instance.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	clone := *a
	if a.Balance != nil {
		clone.Balance = new(big.Int).Set(a.Balance)
	} else {
		clone.Balance = big.NewInt(0)
	}
	return &clone
}
