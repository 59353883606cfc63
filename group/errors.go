package group

import "errors"

// ErrInputTooShort is returned when a decoder cannot satisfy a read it needs
// to perform, or when an encoder requires at least one input value and
// received none.
//
// This is the only failure kind the codec defines; decoders return it rather
// than panicking, and never retain partial sink state beyond what was
// already written before the failing read.
var ErrInputTooShort = errors.New("nibblepack: input too short")
