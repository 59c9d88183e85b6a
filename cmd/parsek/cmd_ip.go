package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/parsek/netaddr"
	"github.com/dhamidi/parsek/parse"
	"github.com/dhamidi/parsek/text"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func notSpace(b byte) bool {
	return !isSpace(b)
}

// tokens parses a whitespace-separated stream of words. The whole stream
// is consumed incrementally: the feeder is only asked for the next chunk
// when the parse has exhausted the current buffer.
func tokens() text.Parser[[]string] {
	word := parse.Bind(text.Satisfy(notSpace, "token byte"), func(first byte) text.Parser[string] {
		return parse.Map(text.TakeWhile(notSpace), func(rest string) string {
			return string(first) + rest
		})
	})
	item := parse.Bind(word, func(w string) text.Parser[string] {
		return parse.Then(text.SkipWhile(isSpace), parse.Succeed[string, byte](w))
	})
	return parse.Then(text.SkipWhile(isSpace), parse.Many(item))
}

func newIPCmd() *cobra.Command {
	var chunkSize int
	var configPath string

	cmd := &cobra.Command{
		Use:   "ip [file]",
		Short: "Validate a stream of IP address literals, fed chunk by chunk",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("chunk-size") {
				cfg.ChunkSize = chunkSize
			}
			if cfg.ChunkSize <= 0 {
				return fmt.Errorf("chunk-size must be positive, got %d", cfg.ChunkSize)
			}
			color.NoColor = color.NoColor || !cfg.Color

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
			feed := readerFeeder(in, cfg.ChunkSize, &readErr)
			words, _, err := text.ParseFeed(feed, tokens(), "")
			if err != nil {
				return fmt.Errorf("tokenize input: %w", err)
			}
			if readErr != nil {
				return fmt.Errorf("read input: %w", readErr)
			}

			valid := color.New(color.FgGreen).SprintFunc()
			invalid := color.New(color.FgRed).SprintFunc()
			bad := 0
			for _, w := range words {
				addr, err := netaddr.ParseAddr(w)
				if err != nil {
					bad++
					log.Debugf("reject %q: %s", w, err)
					fmt.Printf("%s\t%s\n", invalid("invalid"), w)
					continue
				}
				fmt.Printf("%s\t%s\n", valid(addr.String()), w)
			}
			if bad > 0 {
				return fmt.Errorf("%d invalid address(es)", bad)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&chunkSize, "chunk-size", defaultConfig().ChunkSize, "bytes per chunk fed to the parser")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")

	return cmd
}
