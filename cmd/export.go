package cmd

import (
	"datamine/core/database"
	"datamine/feature/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportBatchSize int

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [out.db]",
	Short: "Write a snapshot of the resolved dataset to SQLite",
	Long: `Resolves avatars, light cones, items, missions, challenge floors and monsters and
replaces their snapshot tables in a SQLite database (database.path unless given).
Any dangling reference aborts the export before anything is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.close()

		dbCfg := sess.cfg.Database
		if len(args) == 1 {
			dbCfg.Path = args[0]
		}
		db, err := database.Connect(dbCfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(db); err != nil {
				sess.logger.Warn("Failed to close database", zap.Error(err))
			}
		}()

		summary, err := export.NewService(db, sess.store, sess.logger).Export(cmd.Context(), export.Options{
			RunID:     sess.runID,
			BatchSize: exportBatchSize,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), summary)
	},
}

func init() {
	exportCmd.Flags().IntVar(&exportBatchSize, "batch-size", 0, "rows per INSERT statement (default 200)")
	RootCmd.AddCommand(exportCmd)
}
