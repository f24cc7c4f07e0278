package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/liamwhite/binel/pkg/ghostnet"
	"github.com/spf13/cobra"
)

var framesCmd = &cobra.Command{
	Use:   "frames <file>",
	Short: "Decode a captured ghost-network byte stream into its frames",
	Long: `Read a raw capture of a ghost-network connection and decode it into
its constituent frames, printing each chunk's tag and, where the tag is
recognized, its decoded payload.

Examples:
  bintool frames capture.bin`,
	Args: cobra.ExactArgs(1),
	RunE: runFrames,
}

func runFrames(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	rest := raw
	count := 0
	for len(rest) > 0 {
		frame, next, err := ghostnet.DecodeFrame(rest)
		if err != nil {
			var protoErr *ghostnet.Error
			if errors.As(err, &protoErr) && protoErr.Code == ghostnet.ErrIncomplete {
				break
			}
			return fmt.Errorf("decode frame %d: %w", count, err)
		}

		cmd.Printf("frame %d: %d chunk(s)\n", count, len(frame.Chunks))
		for _, c := range frame.Chunks {
			payload, known, err := c.Decode()
			switch {
			case err != nil:
				cmd.Printf("  %s: decode error: %v\n", c.Type, err)
			case !known:
				cmd.Printf("  %s: unknown chunk (%d bytes)\n", c.Type, len(c.Data))
			default:
				cmd.Printf("  %s: %+v\n", c.Type, payload)
			}
		}

		rest = next
		count++
	}

	cmd.Printf("%d frame(s) total, %d trailing byte(s)\n", count, len(rest))
	return nil
}
