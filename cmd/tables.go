package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var tablesJSON bool

// tablesCmd represents the tables command
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Load every table and list how each was read",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		if err := sess.store.Preload(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load tables: %w", err)
		}
		stats := sess.store.Stats()

		if tablesJSON {
			return printJSON(cmd.OutOrStdout(), stats)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TABLE\tENCODING\tROWS\tFILE")
		for _, st := range stats {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", st.Table, st.Encoding, st.Rows, st.File)
		}
		return w.Flush()
	},
}

func init() {
	tablesCmd.Flags().BoolVar(&tablesJSON, "json", false, "print the statistics as JSON")
	RootCmd.AddCommand(tablesCmd)
}
