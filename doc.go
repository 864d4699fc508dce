// Package gutters provides blocking primitives for moving fixed-size
// binary records ("logs") over any duplex byte stream ("gutter"), plus a
// one-byte rendezvous handshake.
//
// A gutter is anything satisfying io.Reader and/or io.Writer: a TCP
// connection, a pipe, one end of net.Pipe. Throw sends a log, PickUp
// receives one. Hail sends a single synchronization byte; Wait consumes
// one without inspecting it. ThrowAndWait and PickUpAndHail compose a
// transfer with the matching handshake step for a simple
// request/acknowledge discipline.
//
// Logs cross the wire as their raw in-memory bytes in the host's native
// byte order. There is no framing, no length prefix, and no endianness
// conversion: both peers must agree out of band on the exact size and
// layout of every transmitted type. Mismatches produce silently corrupted
// values, not errors.
//
// Every operation blocks until its I/O completes or fails, holds no
// state, and propagates the underlying stream's error unchanged. A single
// gutter must not be used from multiple goroutines without external
// synchronization.
package gutters
