package rrdata

import (
	"testing"

	"github.com/haukened/os-dns/internal/dns/domain"
)

// recordOver builds a message with padding bytes followed by rdata, and a
// view over that rdata.
func recordOver(t *testing.T, pad int, rdata []byte) (domain.RawMessage, domain.ResourceRecord) {
	t.Helper()
	msg := append(make([]byte, pad), rdata...)
	rr, err := domain.NewResourceRecord("example.com", domain.TypeA, domain.ClassINET, 300, pad, len(rdata), len(msg))
	if err != nil {
		t.Fatalf("NewResourceRecord returned error: %v", err)
	}
	return msg, rr
}

func TestDecode_Dispatch(t *testing.T) {
	tests := []struct {
		name  string
		qtype domain.QueryType
		rdata []byte
		want  string
	}{
		{"A", domain.TypeA, []byte{10, 0, 0, 1}, "10.0.0.1"},
		{"TXT", domain.TypeTXT, []byte{2, 'o', 'k'}, "ok"},
		{"CNAME", domain.TypeCNAME, []byte{3, 'f', 'o', 'o'}, "foo"},
		{
			"AAAA", domain.TypeAAAA,
			[]byte{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
			"2001:0db8:0000:0000:0000:0000:0000:0001",
		},
		{
			"SRV", domain.TypeSRV,
			srvFixture(1, 2, 80, nameBytes("svc", "example", "com")),
			"svc.example.com:80,prio=1,weight=2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, rr := recordOver(t, 12, tt.rdata)
			got, err := Decode(tt.qtype, msg, rr)
			if err != nil {
				t.Fatalf("Decode returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecode_UnknownTypeIsEmptyNotError(t *testing.T) {
	msg, rr := recordOver(t, 12, []byte{1, 2, 3, 4})

	got, err := Decode(domain.QueryType(15), msg, rr)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got != "" {
		t.Errorf("Decode = %q, want empty string", got)
	}
}

func TestDecode_TypeMismatchFails(t *testing.T) {
	// an answer section record decoded with the query's type: a 4-byte
	// payload read as AAAA must fail, not truncate or pad
	msg, rr := recordOver(t, 12, []byte{10, 0, 0, 1})

	if _, err := Decode(domain.TypeAAAA, msg, rr); err == nil {
		t.Error("expected error decoding 4-byte rdata as AAAA, got nil")
	}
}
