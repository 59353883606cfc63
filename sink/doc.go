// Package sink implements the four decoded-value consumers used by group
// decoding and stream decoding: PlainSink, DeltaSink, XorDoubleSink, and
// DeltaDiffPackSink.
//
// A sink is the decoder's only output path. It implements group.Sink
// (Reserve/Process/Process8) and applies whatever inverse predictor its
// stream kind requires before storing or re-emitting a value. The decoder
// reaches a sink through the group.Sink interface, one call per value;
// beyond that call, sink state lives entirely in plain Go fields, not
// behind additional indirection.
//
// Every sink is caller-owned. The group decoder checks a frame's length
// before feeding any of its values, so a failed stream decode leaves a
// sink holding the values of the groups decoded before the failing one;
// callers that need to retry discard
// that state with Clear (PlainSink, DeltaSink, DeltaDiffPackSink) or Reset
// (XorDoubleSink, which needs a new seed to reset to).
package sink
