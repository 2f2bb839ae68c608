// Package services provides domain services that orchestrate business
// operations across multiple aggregates in the back office. It implements
// logic that does not naturally belong to a single aggregate root.
//
// The package includes:
//   - SettlementLedger: derives a seller's balance from the settlement entry
//     log and the seller's withdrawal requests
package services
