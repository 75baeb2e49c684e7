package domain

import "fmt"

// RawMessage is the complete wire-format response returned by a single
// query, already truncated to the length the resolver actually wrote.
// It is owned by exactly one parse and is never shared across queries.
type RawMessage []byte

// LookupResult is the ordered sequence of decoded record strings for one
// lookup, in the order the records appeared in the response.
type LookupResult []string

// ResourceRecord is a view into a RawMessage describing one answer record.
// It carries the record metadata plus the offset and length of the rdata
// within the message. It does not own the bytes it views: the RawMessage
// must outlive every ResourceRecord derived from it.
type ResourceRecord struct {
	Name  string
	Type  QueryType
	Class QueryClass
	TTL   uint32

	rdataOff int
	rdataLen int
}

// NewResourceRecord constructs a ResourceRecord view, verifying that the
// rdata region lies entirely within a message of msgLen bytes. Violated
// bounds fail here so no later read can run past the message.
func NewResourceRecord(name string, rrtype QueryType, class QueryClass, ttl uint32, rdataOff, rdataLen, msgLen int) (ResourceRecord, error) {
	if rdataOff < 0 || rdataLen < 0 || rdataOff+rdataLen > msgLen {
		return ResourceRecord{}, fmt.Errorf("rdata [%d, %d) outside message of %d bytes", rdataOff, rdataOff+rdataLen, msgLen)
	}
	return ResourceRecord{
		Name:     name,
		Type:     rrtype,
		Class:    class,
		TTL:      ttl,
		rdataOff: rdataOff,
		rdataLen: rdataLen,
	}, nil
}

// RData returns the record's type-specific payload as a sub-slice of msg.
// The bounds are re-checked against the message actually supplied, so a
// view paired with the wrong message fails instead of reading out of range.
func (rr ResourceRecord) RData(msg RawMessage) ([]byte, error) {
	if rr.rdataOff < 0 || rr.rdataLen < 0 || rr.rdataOff+rr.rdataLen > len(msg) {
		return nil, fmt.Errorf("rdata [%d, %d) outside message of %d bytes", rr.rdataOff, rr.rdataOff+rr.rdataLen, len(msg))
	}
	return msg[rr.rdataOff : rr.rdataOff+rr.rdataLen], nil
}

// RDataOffset returns the absolute offset of the rdata within the message.
// SRV decoding needs it because compressed target names point back into
// earlier parts of the same message.
func (rr ResourceRecord) RDataOffset() int {
	return rr.rdataOff
}

// RDataLen returns the declared rdata length.
func (rr ResourceRecord) RDataLen() int {
	return rr.rdataLen
}
