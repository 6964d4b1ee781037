package ipctest

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	magic      = "i3-ipc"
	headerLen  = len(magic) + 8
	maxPayload = 16 << 20
)

// messageType identifies an i3-ipc request and its reply.
type messageType uint32

const (
	runCommand    messageType = 0
	getWorkspaces messageType = 1
	getVersion    messageType = 7
)

var errBadFrame = errors.New("bad i3-ipc frame")

// writeMessage writes one frame: magic, payload length, type, payload. Both
// integers are in native byte order.
func writeMessage(w io.Writer, typ messageType, payload []byte) error {
	buf := make([]byte, headerLen+len(payload))
	copy(buf, magic)
	binary.NativeEndian.PutUint32(buf[len(magic):], uint32(len(payload)))
	binary.NativeEndian.PutUint32(buf[len(magic)+4:], uint32(typ))
	copy(buf[headerLen:], payload)
	_, err := w.Write(buf)
	return err
}

// readMessage reads one frame.
func readMessage(r io.Reader) (messageType, []byte, error) {
	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return 0, nil, err
	}
	if string(header[:len(magic)]) != magic {
		return 0, nil, fmt.Errorf("%w: bad magic %q", errBadFrame, header[:len(magic)])
	}

	size := binary.NativeEndian.Uint32(header[len(magic):])
	typ := messageType(binary.NativeEndian.Uint32(header[len(magic)+4:]))
	if size > maxPayload {
		return 0, nil, fmt.Errorf("%w: payload of %d bytes exceeds %d", errBadFrame, size, maxPayload)
	}

	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return 0, nil, err
	}
	return typ, body, nil
}
