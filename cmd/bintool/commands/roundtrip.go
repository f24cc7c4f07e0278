package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/liamwhite/binel/pkg/binel"
	"github.com/liamwhite/binel/pkg/binel/bind"
	"github.com/liamwhite/binel/pkg/maps"
	"github.com/spf13/cobra"
)

var roundtripOutput string

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip <file>",
	Short: "Decode and re-encode a map file, checking for a byte-identical result",
	Long: `Parse a .bin map file into a typed Map record and re-encode it,
reporting whether the output is byte-identical to the input.

Examples:
  bintool roundtrip Celeste.bin
  bintool roundtrip Celeste.bin -o copy.bin`,
	Args: cobra.ExactArgs(1),
	RunE: runRoundtrip,
}

func init() {
	roundtripCmd.Flags().StringVarP(&roundtripOutput, "output", "o", "", "write the re-encoded file to this path")
}

func runRoundtrip(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	file, _, err := binel.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse %s: %w", args[0], err)
	}

	var m maps.Map
	if err := bind.FromElement(file.Root, &m); err != nil {
		return fmt.Errorf("bind root element: %w", err)
	}

	rebuilt, err := bind.ToElement(&m)
	if err != nil {
		return fmt.Errorf("rebuild element from Map: %w", err)
	}

	out, err := binel.Write(&binel.File{Package: file.Package, Root: rebuilt})
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if roundtripOutput != "" {
		if err := os.WriteFile(roundtripOutput, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", roundtripOutput, err)
		}
		cmd.Printf("wrote %s (%d bytes)\n", roundtripOutput, len(out))
	}

	if bytes.Equal(raw, out) {
		cmd.Println("round-trip: byte-identical")
	} else {
		cmd.Printf("round-trip: differs (input %d bytes, output %d bytes)\n", len(raw), len(out))
	}
	return nil
}
