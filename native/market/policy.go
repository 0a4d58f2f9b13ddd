package market

// Role names the principal class an operation requires. Call sites map a
// denial to their operation-specific sentinel error, so the check itself
// only answers allow or deny.
type Role uint8

const (
	// RoleCustomer restricts an operation to the creating customer.
	RoleCustomer Role = iota + 1
	// RoleStore restricts an operation to the currently assigned store.
	RoleStore
	// RoleCounterparty admits either the customer or the assigned store.
	RoleCounterparty
)

// authorized decides whether caller satisfies the required role for the
// transaction. The zero principal never authorizes.
func authorized(t *Transaction, caller [20]byte, role Role) bool {
	if t == nil || caller == ([20]byte{}) {
		return false
	}
	switch role {
	case RoleCustomer:
		return caller == t.Customer
	case RoleStore:
		return t.StoreAssigned() && caller == t.Store
	case RoleCounterparty:
		if caller == t.Customer {
			return true
		}
		return t.StoreAssigned() && caller == t.Store
	default:
		return false
	}
}

// The deadline policy is deliberately asymmetric: fulfilment must happen
// strictly inside the window, while payment release is only permitted once
// the window has elapsed, leaving a grace period for late disputes.

func beforeDeadline(now, deadline int64) bool { return now < deadline }

func afterDeadline(now, deadline int64) bool { return now > deadline }
