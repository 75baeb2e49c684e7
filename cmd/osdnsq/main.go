// Command osdnsq resolves domain names through the operating system's
// configured DNS resolver and prints one decoded record per line.
//
// Usage:
//
//	osdnsq [flags] name [name...]
//
// Examples:
//
//	osdnsq example.com                      - A records for example.com
//	osdnsq -t AAAA example.com              - AAAA records
//	osdnsq -t SRV _sip._tcp.example.com     - SRV records
//	osdnsq -t TXT example.com example.org   - TXT records for two names
//
// Names are resolved concurrently, each through its own resolver session,
// and printed in argument order. Configuration comes from OSDNS_-prefixed
// environment variables (see internal/dns/config).
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/haukened/os-dns/internal/dns/common/log"
	"github.com/haukened/os-dns/internal/dns/config"
	"github.com/haukened/os-dns/internal/dns/domain"
	"github.com/haukened/os-dns/internal/dns/gateways/session"
	"github.com/haukened/os-dns/internal/dns/gateways/wire"
	"github.com/haukened/os-dns/internal/dns/services/lookup"
)

const version = "0.1.0-dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	var (
		typeFlag  string
		classFlag string
	)

	root := &cobra.Command{
		Use:   "osdnsq [flags] name [name...]",
		Short: "Resolve names via the system DNS resolver",
		Long: `osdnsq resolves domain names through the nameservers and search
domains configured for the operating system and prints one decoded
record per line, in the order the records appeared in the response.`,
		Version: version,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookups(cmd, cfg, typeFlag, classFlag, args)
		},
		SilenceUsage: true,
	}
	root.Flags().StringVarP(&typeFlag, "type", "t", "A", "query type: A, AAAA, SRV, TXT or CNAME")
	root.Flags().StringVarP(&classFlag, "class", "c", "IN", "query class (only IN is supported)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runLookups(cmd *cobra.Command, cfg *config.AppConfig, typeFlag, classFlag string, names []string) error {
	qtype := domain.QueryTypeFromString(strings.ToUpper(typeFlag))
	if !qtype.IsValid() {
		return fmt.Errorf("unsupported query type %q (supported: A, AAAA, SRV, TXT, CNAME)", typeFlag)
	}
	qclass := domain.QueryClassFromString(strings.ToUpper(classFlag))
	if !qclass.IsValid() {
		return fmt.Errorf("unsupported query class %q (only IN is supported)", classFlag)
	}

	logger := log.GetLogger()
	codec := wire.NewCodec(logger)

	svc, err := lookup.NewService(lookup.Options{
		Sessions: func() (lookup.Session, error) {
			s, err := session.New(session.Options{
				Encoder:    codec,
				ResolvConf: cfg.ResolvConf,
				Timeout:    time.Duration(cfg.TimeoutSeconds) * time.Second,
				Logger:     logger,
			})
			if err != nil {
				return nil, err
			}
			return s, nil
		},
		Parser: codec,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	// resolve all names concurrently, print in argument order
	results := make([]domain.LookupResult, len(names))
	g := new(errgroup.Group)
	for i, name := range names {
		g.Go(func() error {
			task := svc.Resolve(cmd.Context(), name, qclass, qtype)
			out := <-task.Done()
			if out.Err != nil {
				return out.Err
			}
			results[i] = out.Records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, name := range names {
		if len(results[i]) == 0 {
			log.Info(map[string]any{"name": name, "type": qtype.String()}, "No records in answer")
			continue
		}
		for _, record := range results[i] {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, record)
		}
	}
	return nil
}
