package rrdata

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

const (
	// maxPointerJumps bounds compression-pointer chasing during name
	// expansion. Real messages need a handful of jumps at most; a chain
	// longer than this is cyclic or hostile.
	maxPointerJumps = 32

	// maxLabels bounds the number of labels in one expanded name.
	maxLabels = 255
)

// ExpandName decodes a domain name starting at off, following RFC 1035
// compression pointers against the whole message. Pointers may target any
// earlier part of the message, which is why the full buffer is required
// and not just the current record's rdata. It returns the dotted name
// without a trailing dot and the offset of the first byte after the name
// as it appears at off (a pointer consumes two bytes regardless of how
// long the expansion is).
func ExpandName(msg []byte, off int) (string, int, error) {
	var labels []string
	next := -1 // offset after the name at its original position
	jumps := 0

	for {
		if off < 0 || off >= len(msg) {
			return "", 0, errors.New("name offset out of bounds")
		}
		length := int(msg[off])
		switch {
		case length == 0:
			if next < 0 {
				next = off + 1
			}
			return strings.Join(labels, "."), next, nil
		case length&0xC0 == 0xC0:
			if off+1 >= len(msg) {
				return "", 0, errors.New("compression pointer out of bounds")
			}
			if jumps++; jumps > maxPointerJumps {
				return "", 0, errors.New("compression pointer chain too long")
			}
			if next < 0 {
				next = off + 2
			}
			off = int(binary.BigEndian.Uint16(msg[off:off+2]) & 0x3FFF)
		case length&0xC0 != 0:
			return "", 0, fmt.Errorf("reserved label type 0x%02x", length&0xC0)
		default:
			off++
			if off+length > len(msg) {
				return "", 0, errors.New("label length out of bounds")
			}
			if len(labels) >= maxLabels {
				return "", 0, errors.New("too many labels in name")
			}
			labels = append(labels, string(msg[off:off+length]))
			off += length
		}
	}
}

// decodeCharString decodes a DNS character string: one length byte
// followed by that many bytes of text.
func decodeCharString(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty character string")
	}
	n := int(data[0])
	if n > len(data)-1 {
		return "", fmt.Errorf("character string length %d exceeds %d remaining bytes", n, len(data)-1)
	}
	return string(data[1 : 1+n]), nil
}
