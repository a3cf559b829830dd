// Package order implements the Order aggregate and its role-gated state machine.
//
// An order is ingested from checkout in Pending status and then moves
//
//	pending → accepted → preparing → ready → delivering → delivered
//
// with cancelled reachable from every active status. Stores drive the preparation
// steps, deliverers claim ready orders and complete them, admins may take any
// forward step or cancel, and every admin action is appended to the order notes.
//
// Key business rules:
//   - the deliverer is absent while pending and present in delivering and delivered
//   - a ready order is bound to exactly one deliverer by Claim
//   - notes form an append-only audit trail
package order
