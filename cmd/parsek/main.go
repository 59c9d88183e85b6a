package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("parsek")

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "parsek",
		Short: "Incremental parsing tools built on the parsek combinators",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newIPCmd())
	rootCmd.AddCommand(newHeadCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
