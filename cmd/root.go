package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"datamine/core/excel"
	"datamine/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	baseFlag    string
	versionFlag string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "datamine",
	Short: "Static game config explorer",
	Long: `Datamine reads a game's exported config tables (ExcelOutput/ and TextMap/),
resolves the references between them and prints, checks or exports the result.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command line. Interrupts cancel the running command; failures are
// logged and exit with status 1.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	// Console + debug config for readable ISO8601 timestamps.
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fields := []zap.Field{zap.Error(err)}
	var ref *excel.ReferenceError
	var te *excel.TableError
	switch {
	case errors.As(err, &ref):
		fields = append(fields, zap.String("table", ref.Table), zap.String("field", ref.Field), zap.String("key", ref.Key))
	case errors.As(err, &te):
		fields = append(fields, zap.String("table", te.Table), zap.String("file", te.File))
	}
	l.Error("command failed", fields...)
	_ = l.Sync()
	os.Exit(1)
}

func init() {
	RootCmd.PersistentFlags().StringVar(&baseFlag, "base", "", "dataset root containing ExcelOutput/ and TextMap/ (overrides storage.base_dir)")
	RootCmd.PersistentFlags().StringVar(&versionFlag, "version", "", "game version of the dataset (overrides excel.version)")
}
