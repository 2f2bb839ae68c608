// Package seller implements the seller account aggregate: the append-only
// settlement entry log that recognized revenue and refund reversals are
// derived from, the commission policy applied to that log, the administrative
// funds hold, and the settlement-paid presentation flag.
//
// The account never stores a running balance. Gross revenue, commission owed,
// and net settled are recomputed from the entry log on every read, which
// keeps an audit trail and avoids counter drift.
package seller
