package main

import (
	"strings"
	"testing"

	"github.com/jesse-james522/The-Isle-Stat-Reader/src/curves"
	"github.com/jesse-james522/The-Isle-Stat-Reader/src/gamedata"
)

func TestFormatEntryLine(t *testing.T) {
	cases := []struct {
		kind gamedata.EntryKind
		want string
	}{
		{gamedata.KindBalanceTable, "Balance Attributes  [table]"},
		{gamedata.KindStoredCurve, "Balance Attributes  [curve]"},
		{gamedata.KindVirtualCurve, "Balance Attributes  [derived]"},
	}
	for _, c := range cases {
		if got := formatEntryLine("Balance Attributes", c.kind); got != c.want {
			t.Fatalf("kind %d: got %q, want %q", c.kind, got, c.want)
		}
	}
}

func TestFormatBalanceTable(t *testing.T) {
	bt := &gamedata.BalanceTable{
		Keys:   []string{"Damage.Bite", "Health"},
		Values: map[string]float64{"Damage.Bite": 0.5, "Health": 1},
	}
	out := formatBalanceTable(bt)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Attribute") || !strings.Contains(lines[0], "Percentage") {
		t.Fatalf("bad header: %q", lines[0])
	}
	// rows keep file order
	if !strings.HasPrefix(lines[1], "Damage.Bite") || !strings.HasSuffix(lines[1], "0.5") {
		t.Fatalf("bad first row: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Health") {
		t.Fatalf("bad second row: %q", lines[2])
	}
}

func TestFormatSeries(t *testing.T) {
	series := []curves.PlotSeries{
		{Times: []float64{0, 0.5}, Values: []float64{1, 2}},
		{Times: []float64{0.75}, Values: []float64{3}},
	}
	out := formatSeries("Growth Speed", "Value", series)
	if !strings.HasPrefix(out, "Growth Speed (Value)\n") {
		t.Fatalf("missing title line:\n%s", out)
	}
	if !strings.Contains(out, "Senior:\n") || !strings.Contains(out, "Elder:\n") {
		t.Fatalf("missing stage headers:\n%s", out)
	}
	if !strings.Contains(out, " 50%  2\n") {
		t.Fatalf("missing percent row:\n%s", out)
	}
	if !strings.Contains(out, " 75%  3\n") {
		t.Fatalf("missing elder row:\n%s", out)
	}
}
