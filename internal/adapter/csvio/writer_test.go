package csvio

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/payengine/internal/domain"
)

func TestWriteAccounts(t *testing.T) {
	accounts := map[domain.ClientID]*domain.Account{
		2: {
			ClientID:  2,
			Available: decimal.RequireFromString("-2"),
			Held:      decimal.RequireFromString("3"),
			Total:     decimal.RequireFromString("1"),
		},
		1: {
			ClientID:  1,
			Available: decimal.RequireFromString("1.23455"),
			Held:      decimal.Zero,
			Total:     decimal.RequireFromString("1.23455"),
			Locked:    true,
		},
	}

	var buf bytes.Buffer
	if err := WriteAccounts(&buf, accounts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Amounts carry exactly 4 fractional digits, rounded half away from
	// zero, and rows come out ordered by client id.
	want := "client,available,held,total,locked\n" +
		"1,1.2346,0.0000,1.2346,true\n" +
		"2,-2.0000,3.0000,1.0000,false\n"

	if buf.String() != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteAccounts_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAccounts(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf.String() != "client,available,held,total,locked\n" {
		t.Errorf("expected header only, got %q", buf.String())
	}
}
