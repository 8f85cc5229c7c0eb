package cli

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"stripe_testbed/internal/domain/entities"
)

var moneyTuple = regexp.MustCompile(`\(([a-z0-9_]+),(-?\d+)\)`)

func parseMoneyList(t *testing.T, line string) []entities.Money {
	t.Helper()
	out := []entities.Money{}
	for _, m := range moneyTuple.FindAllStringSubmatch(line, -1) {
		amount, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			t.Fatalf("parse %q: %v", m[2], err)
		}
		out = append(out, entities.Money{Currency: m[1], Amount: amount})
	}
	return out
}

func TestBalanceFormat_RoundTrip(t *testing.T) {
	snapshot := entities.BalanceSnapshot{
		Available: []entities.Money{{Amount: 9007199254740993, Currency: "chf"}, {Amount: -1, Currency: "usd"}, {Amount: 0, Currency: "jpy"}},
		Pending:   []entities.Money{{Amount: 123, Currency: "chf"}},
	}

	var buf bytes.Buffer
	newPrinter(&buf).balance(snapshot)

	var pending, available []entities.Money
	for _, line := range strings.Split(buf.String(), "\n") {
		switch {
		case strings.HasPrefix(line, "Pending :"):
			pending = parseMoneyList(t, line)
		case strings.HasPrefix(line, "Available:"):
			available = parseMoneyList(t, line)
		}
	}

	if len(available) != len(snapshot.Available) || len(pending) != len(snapshot.Pending) {
		t.Fatalf("unexpected parse: %+v %+v", available, pending)
	}
	for i := range snapshot.Available {
		if available[i] != snapshot.Available[i] {
			t.Fatalf("available[%d] drifted: %+v != %+v", i, available[i], snapshot.Available[i])
		}
	}
	if pending[0] != snapshot.Pending[0] {
		t.Fatalf("pending drifted: %+v", pending[0])
	}
}

func TestFormatMoneyList(t *testing.T) {
	got := formatMoneyList([]entities.Money{{Amount: 123, Currency: "chf"}, {Amount: 0, Currency: "usd"}})
	if got != "(chf,123), (usd,0)" {
		t.Fatalf("unexpected %q", got)
	}
	if formatMoneyList(nil) != "" {
		t.Fatalf("expected empty list")
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != ExitOK {
		t.Fatalf("nil must be ExitOK")
	}
	if ExitCode(usageErrorf("nope")) != ExitUsage {
		t.Fatalf("usage errors must be ExitUsage")
	}
	if ExitCode(strconv.ErrSyntax) != ExitFailure {
		t.Fatalf("unknown errors must be ExitFailure")
	}
}
