package cmd

import (
	"github.com/spf13/cobra"
)

// probeCmd represents the probe command
var probeCmd = &cobra.Command{
	Use:   "probe <table> <jsonpath>",
	Short: "Evaluate a JSONPath expression over a raw table file",
	Long: `Reads the table file as plain JSON, without decoding it into rows, and prints
every value matched by the expression. Useful for fields no accessor exposes yet.

Example:
  datamine probe AvatarConfig '$[*].AvatarID'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		results, err := sess.store.Probe(args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), results)
	},
}

func init() {
	RootCmd.AddCommand(probeCmd)
}
