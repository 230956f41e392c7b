// Package services contains stateless domain services that coordinate
// multiple aggregates. CartConverter prices a buyer's cart and turns its
// satisfiable lines into order items while deducting inventory.
package services
