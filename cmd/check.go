package cmd

import (
	"fmt"

	"datamine/feature/integrity"

	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the dataset for broken tables and dangling references",
	Long: `Loads every table, then resolves every foreign key of every entity.
Prints the report as JSON and fails if a required folder is missing or a reference is
dangling. Tables absent from the export are listed but do not fail the check.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		report, err := integrity.NewService(sess.store, sess.logger).Run(cmd.Context())
		if err != nil {
			return err
		}
		if err := printJSON(cmd.OutOrStdout(), report); err != nil {
			return err
		}
		if !report.OK() {
			return fmt.Errorf("integrity check failed: %d findings, %d missing folders",
				len(report.Findings), len(report.MissingFolders))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
