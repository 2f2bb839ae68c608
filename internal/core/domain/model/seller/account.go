package seller

import (
	"errors"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not
	// created through NewAccount or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount constructor")

	// ErrAccountHeld is returned when an operation is blocked by an
	// administrative funds hold.
	ErrAccountHeld = errors.New("seller account is held")
)

// Account is the aggregate root for a seller's settlement state. It owns the
// append-only entry log, the commission rate applied to recognized revenue,
// the administrative hold flag, and the settlement-paid presentation flag.
//
// Invariants:
//   - At most one delivery entry exists per order id (exactly-once revenue
//     recognition; repeated signals are no-ops).
//   - Derived figures are always recomputed from the log, never cached.
//   - The settlement-paid flag never participates in balance derivation.
type Account struct {
	sellerID       kernel.UUID
	commissionRate decimal.Decimal
	held           bool
	settlementPaid bool
	entries        []Entry

	isConstructed bool
}

// NewAccount creates a seller account with an empty entry log.
// The commission rate is a fraction in [0, 1).
func NewAccount(sellerID kernel.UUID, commissionRate decimal.Decimal) (*Account, error) {
	if err := sellerID.Validate(); err != nil {
		return nil, err
	}
	if commissionRate.IsNegative() || commissionRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, errs.NewValueIsInvalidErrorWithCause("commission rate is invalid",
			fmt.Errorf("%s is not within [0, 1)", commissionRate.String()))
	}

	return &Account{
		sellerID:       sellerID,
		commissionRate: commissionRate,
		isConstructed:  true,
	}, nil
}

// RestoreAccount reconstructs a seller account from persistence.
func RestoreAccount(
	sellerID kernel.UUID,
	commissionRate decimal.Decimal,
	held bool,
	settlementPaid bool,
	entries []Entry,
) (*Account, error) {
	account, err := NewAccount(sellerID, commissionRate)
	if err != nil {
		return nil, err
	}

	account.held = held
	account.settlementPaid = settlementPaid
	account.entries = entries
	return account, nil
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// SellerID returns the owning seller's identifier.
func (a *Account) SellerID() kernel.UUID { return a.sellerID }

// CommissionRate returns the platform commission fraction.
func (a *Account) CommissionRate() decimal.Decimal { return a.commissionRate }

// Held reports whether an administrative funds hold is in place.
func (a *Account) Held() bool { return a.held }

// SettlementPaid reports the presentation flag set by MarkSettlementPaid.
func (a *Account) SettlementPaid() bool { return a.settlementPaid }

// Entries returns the append-only settlement entry log.
func (a *Account) Entries() []Entry { return a.entries }

// RecognizeDelivery appends a delivery entry for the order's total.
// The order id is the idempotency key: when a delivery entry for it already
// exists the call is a no-op and reports recognized=false, so repeated
// delivery signals never double-count revenue.
func (a *Account) RecognizeDelivery(
	entryID kernel.UUID,
	orderID kernel.UUID,
	total kernel.Money,
) (Entry, bool, error) {
	if err := orderID.Validate(); err != nil {
		return Entry{}, false, err
	}

	for _, e := range a.entries {
		if e.kind == EntryDelivery && e.orderID.IsEqual(orderID) {
			return e, false, nil
		}
	}

	if err := entryID.Validate(); err != nil {
		return Entry{}, false, err
	}

	entry := Entry{
		id:         entryID,
		orderID:    orderID,
		kind:       EntryDelivery,
		gross:      total,
		commission: total.MulRate(a.commissionRate),
		createdAt:  time.Now().UTC(),
	}
	a.entries = append(a.entries, entry)
	return entry, true, nil
}

// ApplyRefund appends a refund entry reversing the refunded amount and its
// commission proportionally. The order aggregate has already validated the
// refund against its own total; the ledger only records the reversal.
func (a *Account) ApplyRefund(
	entryID kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
) (Entry, error) {
	if err := errors.Join(entryID.Validate(), orderID.Validate()); err != nil {
		return Entry{}, err
	}
	if !amount.IsPositive() {
		return Entry{}, errs.NewValueIsInvalidErrorWithCause("refund amount is invalid",
			fmt.Errorf("%s is not greater than 0", amount.String()))
	}

	entry := Entry{
		id:         entryID,
		orderID:    orderID,
		kind:       EntryRefund,
		gross:      amount,
		commission: amount.MulRate(a.commissionRate),
		createdAt:  time.Now().UTC(),
	}
	a.entries = append(a.entries, entry)
	return entry, nil
}

// Hold places an administrative funds hold on the account.
// Holding an already held account is a no-op.
func (a *Account) Hold() {
	a.held = true
}

// Release clears the administrative funds hold.
// Only an explicit admin action calls this; nothing clears a hold
// automatically.
func (a *Account) Release() {
	a.held = false
}

// MarkSettlementPaid records the out-of-band settlement payment
// confirmation. This is presentation state only and must never feed into
// balance derivation.
func (a *Account) MarkSettlementPaid() {
	a.settlementPaid = true
}

// GrossRevenue derives recognized revenue: delivered totals minus refunded
// amounts.
func (a *Account) GrossRevenue() kernel.Money {
	return a.sum(func(e Entry) kernel.Money { return e.gross })
}

// CommissionOwed derives the commission on recognized revenue, net of
// proportional refund reversals.
func (a *Account) CommissionOwed() kernel.Money {
	return a.sum(func(e Entry) kernel.Money { return e.commission })
}

// NetSettled derives the seller's settled revenue: gross minus commission.
func (a *Account) NetSettled() kernel.Money {
	gross := a.GrossRevenue()
	net, err := gross.Sub(a.CommissionOwed())
	if err != nil {
		// Commission is derived from the same entries at a rate below 1,
		// so it cannot exceed gross.
		return kernel.ZeroMoney()
	}
	return net
}

// sum folds the entry log with delivery entries adding and refund entries
// subtracting. Refunds never exceed prior deliveries for the same order, so
// the running total stays non-negative.
func (a *Account) sum(pick func(Entry) kernel.Money) kernel.Money {
	total := decimal.Zero
	for _, e := range a.entries {
		switch e.kind {
		case EntryDelivery:
			total = total.Add(pick(e).Decimal())
		case EntryRefund:
			total = total.Sub(pick(e).Decimal())
		}
	}

	m, err := kernel.NewMoney(total)
	if err != nil {
		return kernel.ZeroMoney()
	}
	return m
}
