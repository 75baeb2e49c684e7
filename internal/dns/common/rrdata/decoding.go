package rrdata

import (
	"github.com/haukened/os-dns/internal/dns/domain"
)

// Decode converts one answer record's rdata into its canonical string
// form, selected by the query type that produced the response. Every
// record in a response is decoded with the query's type, mirroring how
// the answer section is interpreted by the caller.
//
// Unknown query types decode to an empty string without error: the
// service boundary rejects them before a query is ever sent, so reaching
// here with one is defensive, not exceptional.
func Decode(qtype domain.QueryType, msg domain.RawMessage, rr domain.ResourceRecord) (string, error) {
	data, err := rr.RData(msg)
	if err != nil {
		return "", err
	}
	switch qtype {
	case domain.TypeA: // 1
		return decodeAData(data)
	case domain.TypeCNAME: // 5
		return decodeCNAMEData(data)
	case domain.TypeTXT: // 16
		return decodeTXTData(data)
	case domain.TypeAAAA: // 28
		return decodeAAAAData(data)
	case domain.TypeSRV: // 33
		return decodeSRVData(msg, rr.RDataOffset(), rr.RDataLen())
	default:
		return "", nil
	}
}
