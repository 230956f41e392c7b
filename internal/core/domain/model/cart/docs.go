// Package cart models the lines a buyer accumulates before checkout.
// Lines are keyed by (buyer, product); order conversion consumes them and
// leaves only the lines it could not satisfy.
package cart
