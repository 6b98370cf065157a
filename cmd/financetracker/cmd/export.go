package cmd

import (
	"fmt"
	"os"

	"github.com/Basri-akbas/Finance-Tracker/internal/middleware"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportOutput string

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all of a user's data as YAML",
	Long: `Write settings, transactions, installments, recurring templates and
debts of one user as a YAML document.

Example:
  financetracker export --user alice --output alice.yaml`,
	RunE: runExport,
}

func init() {
	addUserFlag(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := middleware.WithUserID(cmd.Context(), userID)
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	snapshot, err := a.services.Session.Export(ctx)
	if err != nil {
		return fmt.Errorf("failed to export data: %w", err)
	}

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(snapshot); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return enc.Close()
}
