// Package wire encodes DNS queries and parses DNS responses in the RFC
// 1035 wire format. The parser treats every input buffer as untrusted:
// all reads are bounds-checked and any malformed framing fails the whole
// response rather than producing a partial result.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/idna"

	"github.com/haukened/os-dns/internal/dns/common/log"
	"github.com/haukened/os-dns/internal/dns/common/rrdata"
	"github.com/haukened/os-dns/internal/dns/domain"
)

// Codec encodes queries for the wire and decodes raw responses into
// ordered lookup results.
type Codec struct {
	logger log.Logger
}

// NewCodec creates a Codec using the provided logger. A nil logger
// disables codec logging.
func NewCodec(logger log.Logger) *Codec {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Codec{logger: logger}
}

// EncodeQuery serializes a single question into a binary DNS query.
// The name is IDNA-encoded first so that internationalized names reach
// the resolver in their ASCII form.
func (c *Codec) EncodeQuery(id uint16, name string, qclass domain.QueryClass, qtype domain.QueryType) ([]byte, error) {
	punyName, err := idna.Lookup.ToASCII(strings.TrimSuffix(name, "."))
	if err != nil {
		return nil, fmt.Errorf("invalid query name %q: %w", name, err)
	}

	var buf bytes.Buffer

	// Header
	_ = binary.Write(&buf, binary.BigEndian, id)             // ID
	_ = binary.Write(&buf, binary.BigEndian, uint16(0x0100)) // Flags: standard query, RD=1
	_ = binary.Write(&buf, binary.BigEndian, uint16(1))      // QDCOUNT
	_ = binary.Write(&buf, binary.BigEndian, uint16(0))      // ANCOUNT
	_ = binary.Write(&buf, binary.BigEndian, uint16(0))      // NSCOUNT
	_ = binary.Write(&buf, binary.BigEndian, uint16(0))      // ARCOUNT

	// Question
	for _, label := range strings.Split(punyName, ".") {
		if len(label) == 0 {
			continue
		}
		if len(label) > 63 {
			return nil, fmt.Errorf("label too long: %s", label)
		}
		buf.WriteByte(byte(len(label)))
		buf.WriteString(label)
	}
	buf.WriteByte(0) // end of name
	_ = binary.Write(&buf, binary.BigEndian, uint16(qtype))
	_ = binary.Write(&buf, binary.BigEndian, uint16(qclass))

	return buf.Bytes(), nil
}

// Parse validates a raw response and decodes every answer record into its
// canonical string form, in wire order. A declared answer count of zero
// is a legitimate empty result; a nonzero count that cannot be decoded in
// full is an error, and no partial sequence is ever returned.
func (c *Codec) Parse(name string, msg domain.RawMessage, qtype domain.QueryType) (domain.LookupResult, error) {
	if len(msg) < 12 {
		return nil, &domain.InvalidResponseError{Name: name}
	}
	qdCount := binary.BigEndian.Uint16(msg[4:6])
	anCount := binary.BigEndian.Uint16(msg[6:8])

	// Skip the echoed question section. Names are walked with the same
	// bounds-checked expansion the answers use.
	offset := 12
	for i := 0; i < int(qdCount); i++ {
		_, next, err := rrdata.ExpandName(msg, offset)
		if err != nil {
			return nil, &domain.InvalidResponseError{Name: name}
		}
		offset = next + 4 // QTYPE + QCLASS
		if offset > len(msg) {
			return nil, &domain.InvalidResponseError{Name: name}
		}
	}

	if anCount == 0 {
		return domain.LookupResult{}, nil
	}

	results := make(domain.LookupResult, 0, anCount)
	for i := 0; i < int(anCount); i++ {
		rr, next, err := parseResourceRecord(msg, offset)
		if err != nil {
			return nil, &domain.InvalidRecordError{Index: i, Cause: err}
		}
		offset = next

		text, err := rrdata.Decode(qtype, msg, rr)
		if err != nil {
			return nil, &domain.InvalidRecordError{Index: i, Cause: err}
		}
		results = append(results, text)
	}

	c.logger.Debug(map[string]any{
		"name":    name,
		"type":    qtype.String(),
		"answers": len(results),
		"size":    len(msg),
	}, "Decoded DNS response")

	return results, nil
}

// parseResourceRecord frames a single answer record at offset and returns
// a bounds-checked view over its rdata plus the offset of the next record.
func parseResourceRecord(msg domain.RawMessage, offset int) (domain.ResourceRecord, int, error) {
	name, next, err := rrdata.ExpandName(msg, offset)
	if err != nil {
		return domain.ResourceRecord{}, 0, fmt.Errorf("failed to decode record name: %w", err)
	}
	offset = next

	if offset+10 > len(msg) {
		return domain.ResourceRecord{}, 0, errors.New("truncated record header")
	}
	typ := binary.BigEndian.Uint16(msg[offset : offset+2])
	class := binary.BigEndian.Uint16(msg[offset+2 : offset+4])
	ttl := binary.BigEndian.Uint32(msg[offset+4 : offset+8])
	rdLen := binary.BigEndian.Uint16(msg[offset+8 : offset+10])
	offset += 10

	rr, err := domain.NewResourceRecord(name, domain.QueryType(typ), domain.QueryClass(class), ttl, offset, int(rdLen), len(msg))
	if err != nil {
		return domain.ResourceRecord{}, 0, fmt.Errorf("truncated rdata: %w", err)
	}
	return rr, offset + int(rdLen), nil
}
