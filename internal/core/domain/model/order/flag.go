package order

import (
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// Severity grades a risk flag.
type Severity int

const (
	// SeverityUnknown represents an invalid or undefined severity.
	SeverityUnknown Severity = iota

	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func getSeverityStrings() map[Severity]string {
	return map[Severity]string{
		SeverityUnknown:  "Unknown",
		SeverityLow:      "Low",
		SeverityMedium:   "Medium",
		SeverityHigh:     "High",
		SeverityCritical: "Critical",
	}
}

// Validate checks if the Severity value is valid.
func (s Severity) Validate() error {
	if s <= SeverityUnknown || s > SeverityCritical {
		return errs.NewValueIsInvalidErrorWithCause("severity is invalid",
			fmt.Errorf("%d is not a valid severity", s))
	}
	return nil
}

// String returns the human-readable name of the severity.
func (s Severity) String() string {
	if str, ok := getSeverityStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// SeverityFromString parses a severity name as supplied by the HTTP surface
// ("low", "medium", "high", "critical"; case-insensitive on the first
// letter is not attempted, input is expected lowercased).
func SeverityFromString(s string) (Severity, error) {
	switch s {
	case "low":
		return SeverityLow, nil
	case "medium":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	case "critical":
		return SeverityCritical, nil
	default:
		return SeverityUnknown, errs.NewValueIsInvalidErrorWithCause("severity is invalid",
			fmt.Errorf("%q is not a valid severity", s))
	}
}

// FlagRecord is an append-only risk flag attached to an order by an admin.
// A record with FreezeFunds set places the owning seller's account on hold
// until an explicit unfreeze.
type FlagRecord struct {
	id          kernel.UUID
	severity    Severity
	reason      string
	freezeFunds bool
	createdAt   time.Time
}

// RestoreFlagRecord reconstructs a flag record from persistence.
func RestoreFlagRecord(
	id kernel.UUID,
	severity Severity,
	reason string,
	freezeFunds bool,
	createdAt time.Time,
) (FlagRecord, error) {
	if err := id.Validate(); err != nil {
		return FlagRecord{}, err
	}
	if err := severity.Validate(); err != nil {
		return FlagRecord{}, err
	}

	return FlagRecord{
		id:          id,
		severity:    severity,
		reason:      reason,
		freezeFunds: freezeFunds,
		createdAt:   createdAt,
	}, nil
}

// ID returns the record identifier.
func (f FlagRecord) ID() kernel.UUID {
	return f.id
}

// Severity returns the flag severity.
func (f FlagRecord) Severity() Severity {
	return f.severity
}

// Reason returns the admin-supplied reason.
func (f FlagRecord) Reason() string {
	return f.reason
}

// FreezeFunds reports whether this flag placed the seller account on hold.
func (f FlagRecord) FreezeFunds() bool {
	return f.freezeFunds
}

// CreatedAt returns the record creation time.
func (f FlagRecord) CreatedAt() time.Time {
	return f.createdAt
}
