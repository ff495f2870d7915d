// Package order provides domain entities and business logic for order
// management in the bakery ordering system. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns items, assignment, and lifecycle
//   - Item: A product line with name and price snapshots
//   - Assignment: The relation to exactly one delivery user
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders require a non-blank delivery address and at least one item
//   - The total equals the sum of item subtotals, fixed at creation
//   - Status follows PENDIENTE -> EN_PREPARACION -> POR_ENTREGAR ->
//     EN_CAMINO -> ENTREGADO, with CANCELADO reachable from any
//     non-terminal status; no step in the chain may be skipped
//   - The delivery assignment can be created or replaced only before the
//     order is EN_CAMINO, and reassigning the same user is idempotent
package order
