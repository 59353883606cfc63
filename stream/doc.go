// Package stream frames an arbitrary-length value sequence into 8-value
// groups and drives the group package's encoder and decoder across them.
//
// Encoding accumulates values into an 8-slot buffer and flushes a group on
// overflow, zero-padding the final partial group. Decoding invokes the
// group decoder exactly ceil(N/8) times for a logical length N, handing
// every one of the resulting 8*ceil(N/8) values to the caller's sink; the
// caller trims the sink's trailing zero padding down to N itself.
package stream
