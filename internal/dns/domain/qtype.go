package domain

import "fmt"

// QueryType represents a DNS resource record type. It selects both the
// question sent upstream and the decoding applied to every answer record.
type QueryType uint16

// Supported DNS query type constants
const (
	TypeA     QueryType = 1  // A - IPv4 address
	TypeCNAME QueryType = 5  // CNAME - Canonical name
	TypeTXT   QueryType = 16 // TXT - Text
	TypeAAAA  QueryType = 28 // AAAA - IPv6 address
	TypeSRV   QueryType = 33 // SRV - Service
)

// IsValid returns true if the QueryType is one of the supported types.
func (t QueryType) IsValid() bool {
	switch t {
	case TypeA, TypeCNAME, TypeTXT, TypeAAAA, TypeSRV:
		return true
	default:
		return false
	}
}

// String returns the textual representation of the QueryType.
// For unknown types, it returns "UNKNOWN(<value>)".
func (t QueryType) String() string {
	switch t {
	case TypeA:
		return "A"
	case TypeCNAME:
		return "CNAME"
	case TypeTXT:
		return "TXT"
	case TypeAAAA:
		return "AAAA"
	case TypeSRV:
		return "SRV"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint16(t))
	}
}

// QueryTypeFromString converts a record type string to its corresponding
// QueryType value. Unknown strings map to 0, which is never valid.
func QueryTypeFromString(s string) QueryType {
	switch s {
	case "A":
		return TypeA
	case "CNAME":
		return TypeCNAME
	case "TXT":
		return TypeTXT
	case "AAAA":
		return TypeAAAA
	case "SRV":
		return TypeSRV
	default:
		return 0
	}
}
