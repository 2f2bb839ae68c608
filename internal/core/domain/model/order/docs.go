// Package order implements the order aggregate: line items, shipping and
// carrier details, the fulfillment status machine, the payment status derived
// from refunds, and the append-only refund and flag records attached to an
// order.
//
// Fulfillment transitions:
//
//	Pending ──> Processing ──> Shipped ──> Delivered
//	   │             │
//	   └──> Cancelled <──┘
//
// Delivered and Cancelled are terminal. All other edges are illegal and are
// rejected with ErrInvalidTransition, leaving the aggregate unchanged.
package order
