// Package order contains the Order aggregate: the header and item snapshot
// created from a buyer's cart, the placed/in_progress/completed state
// machine, and the once-only deliverer assignment.
package order
