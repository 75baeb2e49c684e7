// Package lookup schedules DNS lookups on background goroutines and
// delivers each result back to the caller exactly once. The caller's
// goroutine never blocks on the network: it receives from the task's
// outcome channel whenever it chooses to.
package lookup

import (
	"context"
	"errors"
	"fmt"

	"github.com/haukened/os-dns/internal/dns/common/log"
	"github.com/haukened/os-dns/internal/dns/domain"
)

// Boundary validation errors, reported before any network work starts.
var (
	// ErrUnsupportedClass is returned for any query class other than IN.
	ErrUnsupportedClass = errors.New("unsupported query class")
	// ErrUnsupportedType is returned for query types outside A, AAAA,
	// SRV, TXT and CNAME.
	ErrUnsupportedType = errors.New("unsupported query type")
)

// Error message constants for consistent error handling
const (
	errSessionsRequired = "session factory is required"
	errParserRequired   = "response parser is required"
)

// Options defines the dependencies of the lookup service.
type Options struct {
	// required parameters
	Sessions SessionFactory
	Parser   Parser
	// optional parameters
	Logger log.Logger
}

// Service runs one background task per lookup. Tasks are fully
// independent: each gets its own session and its own response buffer, so
// concurrent lookups share no mutable state.
type Service struct {
	sessions SessionFactory
	parser   Parser
	logger   log.Logger
}

// NewService creates a lookup service from the given options. The session
// factory and parser are required.
func NewService(opts Options) (*Service, error) {
	if opts.Sessions == nil {
		return nil, errors.New(errSessionsRequired)
	}
	if opts.Parser == nil {
		return nil, errors.New(errParserRequired)
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return &Service{
		sessions: opts.Sessions,
		parser:   opts.Parser,
		logger:   opts.Logger,
	}, nil
}

// Resolve schedules one lookup and returns its task immediately. The
// task runs session construction, the network query and response
// decoding strictly in order on a background goroutine; any failure
// short-circuits the remaining steps. Once running, a task is never
// cancelled: it terminates with exactly one outcome even if the caller
// abandons it (ctx only bounds the network I/O inside the session).
func (s *Service) Resolve(ctx context.Context, name string, qclass domain.QueryClass, qtype domain.QueryType) *Task {
	task := newTask(name, qclass, qtype)
	go s.run(ctx, task)
	return task
}

func (s *Service) run(ctx context.Context, t *Task) {
	t.state.Store(int32(StateRunning))

	s.logger.Debug(map[string]any{
		"task":  t.id.String(),
		"name":  t.name,
		"class": t.class.String(),
		"type":  t.qtype.String(),
	}, "Lookup started")

	records, err := s.execute(ctx, t)
	if err != nil {
		s.logger.Warn(map[string]any{
			"task":  t.id.String(),
			"name":  t.name,
			"error": err.Error(),
		}, "Lookup failed")
		t.finish(Outcome{Err: err})
		return
	}

	s.logger.Debug(map[string]any{
		"task":    t.id.String(),
		"name":    t.name,
		"records": len(records),
	}, "Lookup succeeded")
	t.finish(Outcome{Records: records})
}

func (s *Service) execute(ctx context.Context, t *Task) (domain.LookupResult, error) {
	if !t.class.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedClass, t.class)
	}
	if !t.qtype.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t.qtype)
	}

	sess, err := s.sessions()
	if err != nil {
		return nil, err
	}

	raw, err := sess.Lookup(ctx, t.name, t.class, t.qtype)
	if err != nil {
		return nil, err
	}

	return s.parser.Parse(t.name, raw, t.qtype)
}
