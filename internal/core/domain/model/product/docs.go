// Package product models the inventory side of a catalog item: unit
// pricing, the stock counter, and the availability flag. Order conversion
// deducts stock here; catalog restocking adds it back. Both writers share
// the same atomic persistence primitive so the counter never goes negative.
package product
