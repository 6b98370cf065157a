// Package cmd provides CLI commands for the finance tracker.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	debug  bool
	userID string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "financetracker",
	Short: "Personal finance tracker",
	Long: `financetracker keeps a cash/bank ledger, tracks installment purchases,
materializes recurring payments and records debts.

Configuration is read from the environment and an optional .env file.

Example:
  financetracker serve
  financetracker catchup --user alice
  financetracker summary --user alice
  financetracker export --user alice > alice.yaml`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}
		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(catchupCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(tokenCmd)
}

// addUserFlag registers the required --user flag on a per-user command.
func addUserFlag(c *cobra.Command) {
	c.Flags().StringVar(&userID, "user", "", "user id the command acts for")
	_ = c.MarkFlagRequired("user")
}

// exitOnError logs and reports err, then exits. Only for commands that hold no open resources.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
