package withdrawal

import (
	"errors"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request instance was not
	// created through NewRequest or RestoreRequest.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest constructor")

	// ErrInsufficientFunds is returned when a requested amount exceeds the
	// seller's available balance at acceptance time.
	ErrInsufficientFunds = errors.New("insufficient available balance")
)

// BankInfo is the payout destination attached to a request.
type BankInfo struct {
	bankName      string
	accountNumber string
	holderName    string
}

// NewBankInfo creates a payout destination. The account number is required.
func NewBankInfo(bankName, accountNumber, holderName string) (BankInfo, error) {
	if accountNumber == "" {
		return BankInfo{}, errs.NewValueIsRequiredError("accountNumber")
	}

	return BankInfo{
		bankName:      bankName,
		accountNumber: accountNumber,
		holderName:    holderName,
	}, nil
}

// BankName returns the destination bank name.
func (b BankInfo) BankName() string { return b.bankName }

// AccountNumber returns the destination account number.
func (b BankInfo) AccountNumber() string { return b.accountNumber }

// HolderName returns the account holder name.
func (b BankInfo) HolderName() string { return b.holderName }

// Request is the aggregate root for a seller withdrawal. The amount counts
// toward the seller's committed withdrawals from creation; only rejection
// releases it.
type Request struct {
	id          kernel.UUID
	sellerID    kernel.UUID
	amount      kernel.Money
	bankInfo    BankInfo
	status      Status
	createdAt   time.Time
	processedAt *time.Time

	isConstructed bool
}

// NewRequest creates a pending withdrawal request. The amount must be
// positive; balance sufficiency and hold checks are the arbitrator's
// responsibility and happen under the seller's serialization before this
// constructor is reached.
func NewRequest(
	id kernel.UUID,
	sellerID kernel.UUID,
	amount kernel.Money,
	bankInfo BankInfo,
) (*Request, error) {
	if err := errors.Join(id.Validate(), sellerID.Validate()); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%s is not greater than 0", amount.String()))
	}
	if bankInfo.AccountNumber() == "" {
		return nil, errs.NewValueIsRequiredError("bankInfo")
	}

	return &Request{
		id:            id,
		sellerID:      sellerID,
		amount:        amount,
		bankInfo:      bankInfo,
		status:        StatusPending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreRequest reconstructs a withdrawal request from persistence.
func RestoreRequest(
	id kernel.UUID,
	sellerID kernel.UUID,
	amount kernel.Money,
	bankInfo BankInfo,
	status Status,
	createdAt time.Time,
	processedAt *time.Time,
) (*Request, error) {
	request, err := NewRequest(id, sellerID, amount, bankInfo)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	request.status = status
	request.createdAt = createdAt
	request.processedAt = processedAt
	return request, nil
}

// Validate ensures the Request instance was properly constructed.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// ID returns the request identifier.
func (r *Request) ID() kernel.UUID { return r.id }

// SellerID returns the requesting seller's identifier.
func (r *Request) SellerID() kernel.UUID { return r.sellerID }

// Amount returns the requested amount.
func (r *Request) Amount() kernel.Money { return r.amount }

// BankInfo returns the payout destination.
func (r *Request) BankInfo() BankInfo { return r.bankInfo }

// Status returns the current arbitration status.
func (r *Request) Status() Status { return r.status }

// CreatedAt returns the request creation time.
func (r *Request) CreatedAt() time.Time { return r.createdAt }

// ProcessedAt returns the bank transfer completion time, or nil.
func (r *Request) ProcessedAt() *time.Time { return r.processedAt }

// CountsTowardCommitted reports whether this request currently reserves its
// amount.
func (r *Request) CountsTowardCommitted() bool {
	return r.status.CountsTowardCommitted()
}

// Approve accepts the request: Pending -> Approved. The reservation is kept.
// The arbitrator re-validates the seller hold before calling this.
func (r *Request) Approve() error {
	newStatus, err := r.status.TransitionTo(StatusApproved)
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

// Reject declines the request: Pending -> Rejected (terminal). The
// reservation is released because rejected requests stop counting toward
// committed withdrawals.
func (r *Request) Reject() error {
	newStatus, err := r.status.TransitionTo(StatusRejected)
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

// MarkProcessed records the completed bank transfer:
// Approved -> Processed (terminal). The reservation stays counted.
func (r *Request) MarkProcessed() error {
	newStatus, err := r.status.TransitionTo(StatusProcessed)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	r.status = newStatus
	r.processedAt = &now
	return nil
}
