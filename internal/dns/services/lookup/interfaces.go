package lookup

import (
	"context"

	"github.com/haukened/os-dns/internal/dns/domain"
)

// Session is the I/O boundary: it issues one query through the system
// resolver and returns the raw response buffer.
type Session interface {
	Lookup(ctx context.Context, name string, qclass domain.QueryClass, qtype domain.QueryType) (domain.RawMessage, error)
}

// SessionFactory constructs a fresh Session. One session is built per
// task so that concurrent lookups share no resolver state.
type SessionFactory func() (Session, error)

// Parser decodes a raw response buffer into an ordered result sequence.
type Parser interface {
	Parse(name string, msg domain.RawMessage, qtype domain.QueryType) (domain.LookupResult, error)
}
