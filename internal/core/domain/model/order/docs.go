// Package order provides the persisted order aggregate and its status lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding an immutable snapshot of a confirmed configuration
//   - FigureSnapshot: the resolved selection of one figure
//   - Status: the order lifecycle state machine
//   - Event: the domain events an order raises on confirmation and status changes
//
// Key business rules:
//   - An order carries at least one complete figure
//   - Only the status changes after creation
//   - Status follows pending -> processing -> completed, with cancelled reachable
//     from pending or processing
//   - completed and cancelled are terminal
//   - Requesting the current status again is accepted and changes nothing
package order
