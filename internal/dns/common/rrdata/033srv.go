package rrdata

import (
	"encoding/binary"
	"fmt"
)

// decodeSRVData decodes an SRV record rdata: a fixed 6-byte header
// (priority, weight, port as big-endian uint16) followed by the target
// name. The target may be compressed, so expansion runs against the whole
// message starting at the rdata offset plus the header size.
func decodeSRVData(msg []byte, off, length int) (string, error) {
	if length < 6 {
		return "", fmt.Errorf("SRV rdata must be at least 6 bytes, got %d", length)
	}
	priority := binary.BigEndian.Uint16(msg[off:])
	weight := binary.BigEndian.Uint16(msg[off+2:])
	port := binary.BigEndian.Uint16(msg[off+4:])

	target, _, err := ExpandName(msg, off+6)
	if err != nil {
		return "", fmt.Errorf("invalid SRV target: %w", err)
	}

	return fmt.Sprintf("%s:%d,prio=%d,weight=%d", target, port, priority, weight), nil
}
