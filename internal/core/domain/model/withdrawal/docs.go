// Package withdrawal implements the withdrawal request aggregate and its
// arbitration status machine.
//
// Transitions:
//
//	Pending ──> Approved ──> Processed
//	   │
//	   └──> Rejected
//
// Processed and Rejected are terminal; no edge moves backwards. A request
// reserves its amount against the seller's available balance from creation
// until (and unless) it is rejected.
package withdrawal
