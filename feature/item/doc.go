// Package item exposes the inventory item tables.
//
// Items are split across several files by category (materials, character tokens,
// light cones, relics, books). They share one row layout and are exposed as a single
// union keyed by item id, plus a reverse index by current display name.
package item
