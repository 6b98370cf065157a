package cmd

import (
	"fmt"
	"log/slog"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	"github.com/Basri-akbas/Finance-Tracker/internal/core/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/middleware"
	"github.com/Basri-akbas/Finance-Tracker/internal/utils"
	"github.com/spf13/cobra"
)

var catchupToday string

// catchupCmd represents the catchup command.
var catchupCmd = &cobra.Command{
	Use:   "catchup",
	Short: "Materialize due installments and recurring payments",
	Long: `Run the session start for one user: installment catch-up, then
recurring catch-up, then the dashboard summary. Running it twice creates
nothing new.

Example:
  financetracker catchup --user alice
  financetracker catchup --user alice --today 2024-04-01`,
	RunE: runCatchup,
}

func init() {
	addUserFlag(catchupCmd)
	catchupCmd.Flags().StringVar(&catchupToday, "today", "", "date to catch up to (YYYY-MM-DD), defaults to today in TIMEZONE")
}

func runCatchup(cmd *cobra.Command, args []string) error {
	var options []services.ServiceOption
	if catchupToday != "" {
		today, err := domain.ParseDate(catchupToday)
		if err != nil {
			return fmt.Errorf("invalid --today: %w", err)
		}
		options = append(options, services.WithClock(services.FixedClock{Date: today}))
	}

	ctx := middleware.WithUserID(cmd.Context(), userID)
	a, err := newApp(ctx, options...)
	if err != nil {
		return err
	}
	defer a.Close()

	report, err := a.services.Session.StartSession(ctx)
	if err != nil {
		return fmt.Errorf("catch-up failed: %w", err)
	}

	fmt.Printf("Installments: %d created, %d already covered, %d failed\n",
		report.Installments.Created, report.Installments.Reconciled, len(report.Installments.Failures))
	fmt.Printf("Recurring:    %d created, %d already covered, %d failed\n",
		report.Recurring.Created, report.Recurring.Reconciled, len(report.Recurring.Failures))
	for _, f := range append(report.Installments.Failures, report.Recurring.Failures...) {
		fmt.Printf("  %s: %s\n", f.SourceID, f.Message)
	}
	printSummary(report.Summary)

	slog.Info("Catch-up finished", slog.String("user_id", userID))
	return nil
}

func printSummary(s domain.Summary) {
	fmt.Printf("\n=== Summary (%s) ===\n", s.Today)
	fmt.Printf("Month income:        %s\n", utils.FormatMoney(s.MonthIncome))
	fmt.Printf("Month expense:       %s\n", utils.FormatMoney(s.MonthExpense))
	fmt.Printf("Cash balance:        %s\n", utils.FormatMoney(s.Balances.Cash))
	fmt.Printf("Bank balance:        %s\n", utils.FormatMoney(s.Balances.Bank))
	fmt.Printf("Active installments: %s\n", utils.FormatMoney(s.ActiveInstallmentTotal))
	fmt.Println()
}
