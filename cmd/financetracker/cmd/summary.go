package cmd

import (
	"fmt"

	"github.com/Basri-akbas/Finance-Tracker/internal/middleware"
	"github.com/spf13/cobra"
)

// summaryCmd represents the summary command.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Display the dashboard summary without catching up",
	Long: `Display current-month totals, balances and the outstanding installment
amount for one user. No transactions are created.

Example:
  financetracker summary --user alice`,
	RunE: runSummary,
}

func init() {
	addUserFlag(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	ctx := middleware.WithUserID(cmd.Context(), userID)
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	summary, err := a.services.Session.Summary(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute summary: %w", err)
	}
	printSummary(*summary)
	return nil
}
