// curvedump is a headless companion to the viewer: it lists creatures and
// their attribute catalogs, and dumps balance tables or post-processed curve
// series as plain text for scripting and quick inspection.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jesse-james522/The-Isle-Stat-Reader/src/curves"
	"github.com/jesse-james522/The-Isle-Stat-Reader/src/gamedata"
)

func main() {
	var dir string
	var dino string
	var attr string
	var logLevel string
	flag.StringVar(&dir, "dir", "", "Path to the exported JSONs root directory")
	flag.StringVar(&dino, "dino", "", "Dinosaur name (directory under the root)")
	flag.StringVar(&attr, "attr", "", "Attribute display name from the catalog")
	flag.StringVar(&logLevel, "loglevel", "warn", "Log level: debug|info|warn|error")
	flag.Parse()
	gamedata.SetLogLevel(logLevel)

	root, err := gamedata.ResolveRoot(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "curvedump: %v\n", err)
		os.Exit(1)
	}

	if dino == "" {
		dinos, err := gamedata.ListDinosaurs(root)
		if err != nil {
			fmt.Fprintf(os.Stderr, "curvedump: %v\n", err)
			os.Exit(1)
		}
		for _, d := range dinos {
			fmt.Println(d)
		}
		return
	}

	cat, err := gamedata.LoadCatalog(root, dino)
	if err != nil {
		fmt.Fprintf(os.Stderr, "curvedump: %s: %v\n", dino, err)
		os.Exit(1)
	}

	if attr == "" {
		for _, name := range cat.Names() {
			e, _ := cat.Lookup(name)
			fmt.Println(formatEntryLine(name, e.Kind))
		}
		return
	}

	e, ok := cat.Lookup(attr)
	if !ok {
		fmt.Fprintf(os.Stderr, "curvedump: %s has no attribute %q\n", dino, attr)
		os.Exit(1)
	}
	out, err := renderEntry(attr, e)
	if err != nil {
		fmt.Fprintf(os.Stderr, "curvedump: %s: %v\n", attr, err)
		os.Exit(1)
	}
	fmt.Print(out)
}

func renderEntry(name string, e gamedata.Entry) (string, error) {
	switch e.Kind {
	case gamedata.KindBalanceTable:
		bt, err := gamedata.LoadBalanceTable(e.Path)
		if err != nil {
			return "", err
		}
		return formatBalanceTable(bt), nil
	case gamedata.KindStoredCurve:
		rec, err := gamedata.LoadRecord(e.Path)
		if err != nil {
			return "", err
		}
		set, err := curves.Normalize(rec)
		if err != nil {
			return "", err
		}
		series, yLabel := curves.BuildSeries(set, name)
		return formatSeries(name, yLabel, series), nil
	case gamedata.KindVirtualCurve:
		series, _ := curves.BuildSeries(e.Virtual.Curves, name)
		return formatSeries(name, e.Virtual.YLabel, series), nil
	}
	return "", fmt.Errorf("unknown entry kind %d", e.Kind)
}

func formatEntryLine(name string, kind gamedata.EntryKind) string {
	switch kind {
	case gamedata.KindBalanceTable:
		return name + "  [table]"
	case gamedata.KindVirtualCurve:
		return name + "  [derived]"
	default:
		return name + "  [curve]"
	}
}

func formatBalanceTable(bt *gamedata.BalanceTable) string {
	var sb strings.Builder
	width := len("Attribute")
	for _, k := range bt.Keys {
		if len(k) > width {
			width = len(k)
		}
	}
	fmt.Fprintf(&sb, "%-*s  %s\n", width, "Attribute", "Percentage")
	for _, k := range bt.Keys {
		fmt.Fprintf(&sb, "%-*s  %s\n", width, k, strconv.FormatFloat(bt.Values[k], 'g', -1, 64))
	}
	return sb.String()
}

func formatSeries(name, yLabel string, series []curves.PlotSeries) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n", name, yLabel)
	for i, ps := range series {
		fmt.Fprintf(&sb, "%s:\n", curves.StageName(i))
		for j := range ps.Times {
			fmt.Fprintf(&sb, "  %3.0f%%  %s\n", ps.Times[j]*100, strconv.FormatFloat(ps.Values[j], 'g', -1, 64))
		}
	}
	return sb.String()
}
