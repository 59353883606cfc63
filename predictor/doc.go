// Package predictor implements the two stream-level predictors NibblePack
// layers on top of the group codec: a delta prefix for non-decreasing u64
// sequences, and an XOR prefix for float64 sequences.
//
// Both predictors produce a u64 sequence suitable for the plain group
// encoder (stream.EncodePlain drives the actual group framing); predictor
// here only performs the value transform, not byte-level I/O.
package predictor
