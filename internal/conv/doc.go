// Package conv provides checked integer conversions.
//
// Use it at API boundaries where a caller-supplied int is narrowed (tile
// values, bucket counts). Conversions that are safe by construction use plain
// casts.
package conv
