package cmd

import (
	"fmt"
	"strings"

	"datamine/feature/export"

	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:       "show <kind> <id>",
	Short:     "Print one resolved entity as JSON",
	Long:      fmt.Sprintf("Resolves one entity and its references and prints it as JSON.\nKinds: %s.", strings.Join(export.Kinds(), ", ")),
	Args:      cobra.ExactArgs(2),
	ValidArgs: export.Kinds(),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		rec, err := export.Lookup(sess.store, args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), rec)
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}
