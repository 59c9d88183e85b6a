package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/parsek/text"
	"github.com/spf13/cobra"
)

func newHeadCmd() *cobra.Command {
	var count int
	var chunkSize int

	cmd := &cobra.Command{
		Use:   "head [file]",
		Short: "Emit the first N bytes of a stream using the Take combinator",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if chunkSize <= 0 {
				return fmt.Errorf("chunk-size must be positive, got %d", chunkSize)
			}

			var in io.Reader = os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			var readErr error
			feed := readerFeeder(in, chunkSize, &readErr)
			taken, _, err := text.ParseFeed(feed, text.Take(count), "")
			if err != nil {
				return fmt.Errorf("take %d byte(s): %w", count, err)
			}
			if readErr != nil {
				return fmt.Errorf("read input: %w", readErr)
			}
			if _, err := io.WriteString(os.Stdout, taken); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "bytes", "n", 16, "number of bytes to take")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", defaultConfig().ChunkSize, "bytes per chunk fed to the parser")

	return cmd
}
