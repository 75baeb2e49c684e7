// Package session performs the network half of a lookup: it loads the
// operating system's resolver configuration, walks the search path the
// way res_nsearch does, and exchanges one query at a time over UDP,
// returning the raw response buffer for the parser to decode.
package session

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
	"go.uber.org/multierr"

	"github.com/haukened/os-dns/internal/dns/common/log"
	"github.com/haukened/os-dns/internal/dns/domain"
)

// MaxAnswerSize is the receive buffer size for one query. DNS messages
// cannot exceed 64 KiB, so a response always fits.
const MaxAnswerSize = 64 * 1024

const (
	defaultResolvConf = "/etc/resolv.conf"
	defaultTimeout    = 5 * time.Second
)

// Error message constants for consistent error handling
const (
	errEncoderRequired = "query encoder is required"
	errNoNameservers   = "no nameservers configured"
	errFailedToConnect = "failed to connect: %w"
	errEncodeFailed    = "encode failed: %w"
	errWriteFailed     = "write failed: %w"
	errReadFailed      = "read failed: %w"
)

// Encoder serializes one question into wire format.
type Encoder interface {
	EncodeQuery(id uint16, name string, qclass domain.QueryClass, qtype domain.QueryType) ([]byte, error)
}

// DialFunc defines a function type for establishing a network connection.
// It takes a context for cancellation, the network type and the address,
// returning a net.Conn and an error if any occurs.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Options defines configuration parameters for a resolver session.
type Options struct {
	// required parameters
	Encoder Encoder
	// optional parameters
	ResolvConf string        // path to the resolver configuration, default /etc/resolv.conf
	Timeout    time.Duration // per-attempt deadline, default 5s
	Logger     log.Logger
	// options to inject for testing purposes
	Dial DialFunc
}

// Session owns the resolver configuration for the duration of one or
// more queries. Sessions are cheap and constructed per lookup; they hold
// no connection state between queries, and each exchange releases its
// socket on every exit path.
type Session struct {
	cfg     *dns.ClientConfig
	encoder Encoder
	dial    DialFunc
	timeout time.Duration
	logger  log.Logger
}

// New creates a session by loading the system resolver configuration.
// A configuration that cannot be read, or one that names no servers, is
// fatal for the session and reported as a domain.InitError.
func New(opts Options) (*Session, error) {
	if opts.Encoder == nil {
		return nil, errors.New(errEncoderRequired)
	}
	if opts.ResolvConf == "" {
		opts.ResolvConf = defaultResolvConf
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Dial == nil {
		opts.Dial = (&net.Dialer{}).DialContext
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}

	cfg, err := dns.ClientConfigFromFile(opts.ResolvConf)
	if err != nil {
		return nil, &domain.InitError{Cause: err}
	}
	if len(cfg.Servers) == 0 {
		return nil, &domain.InitError{Cause: errors.New(errNoNameservers)}
	}

	return &Session{
		cfg:     cfg,
		encoder: opts.Encoder,
		dial:    opts.Dial,
		timeout: opts.Timeout,
		logger:  opts.Logger,
	}, nil
}

// Lookup issues one query through the system resolver's search rules and
// returns the raw response buffer, truncated to the bytes actually
// received. Candidate names come from the configured search domains and
// ndots threshold; each candidate is tried against each nameserver in
// order. The first usable answer wins. When everything fails, the
// per-attempt causes are aggregated into a domain.LookupFailedError
// carrying the original name, not the expanded candidates.
func (s *Session) Lookup(ctx context.Context, name string, qclass domain.QueryClass, qtype domain.QueryType) (domain.RawMessage, error) {
	var errs error

	for _, fqdn := range s.cfg.NameList(name) {
		for _, server := range s.cfg.Servers {
			addr := net.JoinHostPort(server, s.cfg.Port)

			raw, err := s.exchange(ctx, addr, fqdn, qclass, qtype)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: query %q: %w", addr, fqdn, err))
				continue
			}

			rcode := domain.RCode(raw[3] & 0x0F)
			if rcode == domain.RCodeNoError {
				s.logger.Debug(map[string]any{
					"name":   name,
					"fqdn":   fqdn,
					"server": addr,
					"size":   len(raw),
				}, "Query answered")
				return raw, nil
			}

			errs = multierr.Append(errs, fmt.Errorf("%s: query %q: %s", addr, fqdn, rcode))
			if rcode == domain.RCodeNXDomain {
				// this candidate does not exist anywhere; move to the
				// next name in the search path instead of asking the
				// remaining servers the same question
				break
			}
		}
	}

	return nil, &domain.LookupFailedError{Name: name, Cause: errs}
}

// exchange performs a single query against one server: dial, write, read,
// validate the echoed ID, truncate. The socket is released via defer on
// every path.
func (s *Session) exchange(ctx context.Context, addr, fqdn string, qclass domain.QueryClass, qtype domain.QueryType) (domain.RawMessage, error) {
	ctx, cancel := s.ensureContextDeadline(ctx)
	if cancel != nil {
		defer cancel()
	}

	conn, err := s.dial(ctx, "udp", addr)
	if err != nil {
		return nil, fmt.Errorf(errFailedToConnect, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	id := dns.Id()
	query, err := s.encoder.EncodeQuery(id, fqdn, qclass, qtype)
	if err != nil {
		return nil, fmt.Errorf(errEncodeFailed, err)
	}

	if _, err := conn.Write(query); err != nil {
		return nil, fmt.Errorf(errWriteFailed, err)
	}

	buffer := make([]byte, MaxAnswerSize)
	n, err := conn.Read(buffer)
	if err != nil {
		return nil, fmt.Errorf(errReadFailed, err)
	}
	if n < 12 {
		return nil, errors.New("response too short")
	}
	if got := binary.BigEndian.Uint16(buffer[0:2]); got != id {
		return nil, fmt.Errorf("ID mismatch: expected %d, got %d", id, got)
	}

	return domain.RawMessage(buffer[:n]), nil
}

// ensureContextDeadline ensures the context has a deadline, adding the
// session's default timeout if needed.
func (s *Session) ensureContextDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); !ok {
		return context.WithTimeout(ctx, s.timeout)
	}
	return ctx, nil
}
