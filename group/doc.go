// Package group implements the NibblePack group codec: the bit-packed format
// that compresses exactly eight 64-bit unsigned integers per group by
// stripping the leading and trailing zero nibbles common to the group.
//
// # Wire format
//
// A group frame is:
//
//	byte 0      : nonzero_mask           (bit i set iff input i is nonzero)
//	if mask != 0:
//	  byte 1    : (num_nibbles-1)<<4 | trailing_zero_nibbles
//	  bytes 2.. : body, little-endian bit-packed
//
// If nonzero_mask is zero the frame is exactly one byte; no width byte or
// body follows.
//
// # Width selection
//
// num_nibbles and trailing_zero_nibbles are derived from the OR of all eight
// inputs: trailing_zero_nibbles is the number of zero low-order nibbles
// common to every nonzero input, and num_nibbles is the width, in nibbles,
// needed to hold the largest nonzero input after that common shift. Both are
// computed once per group and apply uniformly to every nonzero value in it.
//
// # Even vs. odd width
//
// When num_nibbles is even the body is byte-aligned: each nonzero value
// occupies exactly num_nibbles/2 bytes with no cross-value bit packing. When
// num_nibbles is odd, values are bit-packed back-to-back across a rolling
// 64-bit word, because no whole number of bytes holds an odd nibble count.
// Both paths produce a decodable stream; the even path is simply a
// specialization that avoids the bit-packing overhead.
package group
