// Package order provides the Order aggregate of the catering system and the
// state machine that drives it through its lifecycle.
//
// The package includes:
//   - Status: the nine lifecycle states and the transition table between them
//   - Order: the aggregate root holding customer, menu, delivery and pricing snapshots
//   - HistoryEntry: one line of the append-only status history
//   - StateMachine: stamps time and labels on transitions using injected collaborators
//
// Lifecycle:
//
//	Pending ─> Validated ─> Preparing ─> Ready ─> Delivering ─> Delivered ─┬─> WaitingMaterialReturn ─> Completed
//	   │           │            │                                          └─────────────────────────> Completed
//	   └───────────┴────────────┴─> Cancelled
//
// Completed and Cancelled are terminal. Every status change goes through the
// transition table; an edge that is not in the table is rejected with an
// IllegalTransitionError and leaves the order untouched.
//
// Snapshot fields (customer, menu, delivery, pricing) are copied into the order
// at creation so later edits to addresses or menus never alter past orders.
package order
