package domain

import "fmt"

// QueryClass represents a DNS class. Only the Internet class is defined
// for lookups; everything else is rejected at the service boundary.
type QueryClass uint16

// ClassINET is the Internet DNS class.
const ClassINET QueryClass = 1

// IsValid returns true if the QueryClass is supported.
func (c QueryClass) IsValid() bool {
	return c == ClassINET
}

// String returns the textual representation of the QueryClass.
func (c QueryClass) String() string {
	switch c {
	case ClassINET:
		return "IN"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint16(c))
	}
}

// QueryClassFromString converts a class string to its corresponding
// QueryClass value. Unknown strings map to 0, which is never valid.
func QueryClassFromString(s string) QueryClass {
	switch s {
	case "IN":
		return ClassINET
	default:
		return 0
	}
}
