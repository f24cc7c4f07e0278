package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/liamwhite/binel/pkg/binel"
	"github.com/liamwhite/binel/pkg/binel/bind"
	"github.com/liamwhite/binel/pkg/maps"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Parse a map file and print its BinEl tree",
	Long: `Parse a .bin map file and print the raw BinEl element tree, then
attempt to bind it into a typed Map record and print that too.

Examples:
  bintool dump Celeste.bin`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	file, rest, err := binel.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}
	if len(rest) != 0 {
		cmd.Printf("warning: %d trailing bytes after the parsed file\n", len(rest))
	}

	cmd.Printf("package: %s\n", file.Package)
	dumpElement(cmd, file.Root, 0)

	var m maps.Map
	if err := bind.FromElement(file.Root, &m); err != nil {
		cmd.Printf("\ncould not bind root element to maps.Map: %v\n", err)
		return nil
	}
	cmd.Printf("\n%+v\n", m)
	return nil
}

// dumpElement writes an indented tree view of el, one attribute or child
// per line, to cmd's output.
func dumpElement(cmd *cobra.Command, el *binel.Element, depth int) {
	pad := strings.Repeat("  ", depth)
	cmd.Printf("%s%s\n", pad, el.Name)

	for _, name := range el.AttrNames() {
		val, _ := el.Get(name)
		cmd.Printf("%s  %s = %s\n", pad, name, formatValue(val))
	}
	for _, child := range el.Children() {
		dumpElement(cmd, child, depth+1)
	}
}

func formatValue(v binel.Value) string {
	if b, ok := v.AsBool(); ok {
		return fmt.Sprintf("%t", b)
	}
	if i, ok := v.AsInt(); ok {
		return fmt.Sprintf("%d", i)
	}
	if f, ok := v.AsFloat(); ok {
		return fmt.Sprintf("%g", f)
	}
	if s, ok := v.AsText(); ok {
		return fmt.Sprintf("%q", s)
	}
	return "<unknown>"
}
