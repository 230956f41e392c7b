// Package deliverer contains the Deliverer aggregate: the identity and
// contact details of a person delivering orders, the activity flag that
// gates new-order notifications, and the rating summary derived from
// buyer reviews.
package deliverer
