// Package kernel contains shared value objects used across all domain
// aggregates: UUID identifiers for catalog and order entities, and chat
// identifiers for the people interacting with the shop (buyers, admins,
// deliverers).
//
// Value objects in this package are immutable and validate themselves on
// construction. Zero values are invalid and rejected by Validate, which
// guards against entities reconstructed from incomplete persistence rows.
package kernel
