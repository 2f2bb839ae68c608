package services

import (
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/seller"
	"backoffice/internal/core/domain/model/withdrawal"
)

// Balance is the derived financial snapshot for a seller. Every figure is
// recomputed from the account entry log and the withdrawal requests on each
// call; nothing here is stored.
type Balance struct {
	GrossRevenue   kernel.Money
	CommissionOwed kernel.Money
	NetSettled     kernel.Money
	Committed      kernel.Money
	Available      kernel.Money
	Held           bool
	SettlementPaid bool
}

// SettlementLedger is a domain service that derives seller balances. It
// combines the account aggregate, which owns revenue recognition, with the
// withdrawal aggregates, which own the committed reservations.
type SettlementLedger struct{}

// NewSettlementLedger creates a new SettlementLedger instance.
func NewSettlementLedger() SettlementLedger {
	return SettlementLedger{}
}

// BalanceOf derives the seller's balance:
//
//	available = net settled - committed withdrawals
//
// Committed covers every non-rejected request, including processed ones,
// because processed funds have left the platform. A held account reports a
// zero available balance regardless of the arithmetic.
func (s SettlementLedger) BalanceOf(
	account *seller.Account,
	requests []*withdrawal.Request,
) (Balance, error) {
	if err := account.Validate(); err != nil {
		return Balance{}, err
	}

	committed := kernel.ZeroMoney()
	for _, r := range requests {
		if err := r.Validate(); err != nil {
			return Balance{}, err
		}
		if !r.CountsTowardCommitted() {
			continue
		}
		committed = committed.Add(r.Amount())
	}

	netSettled := account.NetSettled()
	available, err := netSettled.Sub(committed)
	if err != nil {
		// A refund reversal landing after a reservation was accepted can
		// push committed past net settled. The refund workflow rejects
		// pending requests to close the gap (RequestsToRevoke); approved
		// and processed requests can leave a residual over-commitment, and
		// the available balance floors at zero until new deliveries settle.
		available = kernel.ZeroMoney()
	}
	if account.Held() {
		available = kernel.ZeroMoney()
	}

	return Balance{
		GrossRevenue:   account.GrossRevenue(),
		CommissionOwed: account.CommissionOwed(),
		NetSettled:     netSettled,
		Committed:      committed,
		Available:      available,
		Held:           account.Held(),
		SettlementPaid: account.SettlementPaid(),
	}, nil
}

// RequestsToRevoke returns the pending requests that must be rejected to
// restore committed <= net settled after a revenue reversal, newest first so
// the oldest reservations keep their priority. Approved and processed
// requests are past the point of revocation and are never returned; a
// reversal larger than the pending reservations therefore leaves a residual
// over-commitment that only future deliveries close.
func (s SettlementLedger) RequestsToRevoke(
	account *seller.Account,
	requests []*withdrawal.Request,
) ([]*withdrawal.Request, error) {
	balance, err := s.BalanceOf(account, requests)
	if err != nil {
		return nil, err
	}

	committed := balance.Committed
	var revoke []*withdrawal.Request
	for i := len(requests) - 1; i >= 0 && committed.GreaterThan(balance.NetSettled); i-- {
		if requests[i].Status() != withdrawal.StatusPending {
			continue
		}
		committed, err = committed.Sub(requests[i].Amount())
		if err != nil {
			return nil, err
		}
		revoke = append(revoke, requests[i])
	}
	return revoke, nil
}

// CanWithdraw reports whether the seller may reserve amount right now. It is
// the single sufficiency check used by the withdrawal arbitrator.
func (s SettlementLedger) CanWithdraw(
	account *seller.Account,
	requests []*withdrawal.Request,
	amount kernel.Money,
) (bool, error) {
	if account.Held() {
		return false, seller.ErrAccountHeld
	}

	balance, err := s.BalanceOf(account, requests)
	if err != nil {
		return false, err
	}

	if amount.GreaterThan(balance.Available) {
		return false, withdrawal.ErrInsufficientFunds
	}
	return true, nil
}
