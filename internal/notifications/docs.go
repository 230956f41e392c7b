// Package notifications fans order events out over the messaging
// platform: new orders to the admin pool and the active deliverer pool,
// status changes to the buyer.
//
// Delivery is best-effort by design. Each recipient is attempted
// independently under a send timeout; one blocked chat never stops the
// rest of the pool, and no send is retried. Failures are logged and
// reported per recipient so callers and tests can assert on partial
// outcomes, but they never roll back the order change that triggered
// the fan-out.
package notifications
