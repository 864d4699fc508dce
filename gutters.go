package gutters

import (
	"encoding/binary"
	"io"

	"github.com/danmuck/gutters/rawview"
)

// HailByte is the synchronization byte written by Hail. Wait never
// inspects the byte it consumes, so any value satisfies the rendezvous.
const HailByte byte = '\n'

// PickUp reads exactly sizeof(T) bytes from the gutter into *log,
// overwriting its contents. On error the contents of *log are
// unspecified: the stream may have delivered part of the record before
// failing. A stream that ends before the full record arrives fails with
// the underlying short-read error; zero bytes delivered is also a
// failure, never a zero-filled success.
func PickUp[T any](gutter io.Reader, log *T) error {
	if view, ok := rawview.TryBytes(log); ok {
		_, err := io.ReadFull(gutter, view)
		return err
	}
	return binary.Read(gutter, binary.NativeEndian, log)
}

// Throw writes the sizeof(T) raw bytes of *log to the gutter. Partial
// writes already flushed to the transport are not reported individually;
// only overall success or the underlying write error is surfaced.
func Throw[T any](gutter io.Writer, log *T) error {
	if view, ok := rawview.TryBytes(log); ok {
		_, err := gutter.Write(view)
		return err
	}
	return binary.Write(gutter, binary.NativeEndian, log)
}

// Hail writes the single byte HailByte to the gutter as a
// synchronization signal for a peer blocked in Wait.
func Hail(gutter io.Writer) error {
	_, err := gutter.Write([]byte{HailByte})
	return err
}

// Wait reads exactly one byte from the gutter and discards it. The
// byte's value is not validated: any byte completes the wait, not only
// one sent by Hail.
func Wait(gutter io.Reader) error {
	var scratch [1]byte
	_, err := io.ReadFull(gutter, scratch[:])
	return err
}

// PickUpAndHail performs PickUp then Hail. If PickUp fails its error is
// returned immediately and no hail byte is written.
func PickUpAndHail[T any](gutter io.ReadWriter, log *T) error {
	if err := PickUp(gutter, log); err != nil {
		return err
	}
	return Hail(gutter)
}

// ThrowAndWait performs Throw then Wait. If Throw fails its error is
// returned immediately and no byte is read. Success means the peer
// reached its hail, not that it interpreted the payload correctly.
func ThrowAndWait[T any](gutter io.ReadWriter, log *T) error {
	if err := Throw(gutter, log); err != nil {
		return err
	}
	return Wait(gutter)
}
