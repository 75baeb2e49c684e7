package rrdata

import (
	"fmt"
	"strings"
)

// decodeAAAAData decodes an AAAA record rdata into eight colon-separated
// hex groups. Groups are kept uncompressed (no "::" elision): downstream
// consumers match on the fixed-width form, so net.IP.String() compression
// would change the contract.
func decodeAAAAData(data []byte) (string, error) {
	// data = 16 bytes, big-endian 16-bit groups
	if len(data) != 16 {
		return "", fmt.Errorf("AAAA record rdata must be 16 bytes, got %d", len(data))
	}
	var b strings.Builder
	for i := 0; i < 16; i += 2 {
		if i > 0 {
			b.WriteByte(':')
		}
		fmt.Fprintf(&b, "%02x%02x", data[i], data[i+1])
	}
	return b.String(), nil
}
