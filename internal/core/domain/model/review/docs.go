// Package review contains the Review aggregate: a buyer's 1-to-5 rating
// of the deliverer on a completed order, revisable by the same buyer, plus
// the mean-rating computation feeding the deliverer's rating summary.
package review
