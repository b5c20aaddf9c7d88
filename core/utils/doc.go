// Package utils provides common helpers for key handling: parsing JSON object keys into
// typed table keys, formatting keys for diagnostics and checking the zero sentinel.
package utils
