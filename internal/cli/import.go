package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhis2go/dhis2"
)

var (
	importStrategy string
	importDryRun   bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a data value set from a JSON file",
	Long: `Reads a data value set from the given JSON file and imports it
asynchronously, polling the server until the import job completes and
printing the import summary.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importStrategy, "strategy", "", "import strategy (CREATE, UPDATE, CREATE_AND_UPDATE, DELETE)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "validate the import without persisting")
}

func runImport(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var dataValueSet dhis2.DataValueSet
	if err := json.Unmarshal(data, &dataValueSet); err != nil {
		return fmt.Errorf("invalid data value set file: %w", err)
	}

	history, err := openStore()
	if err != nil {
		return err
	}
	defer history.Close()

	run, err := history.Begin("import", dataValueSet.DataSet, dataValueSet.Period, dataValueSet.OrgUnit)
	if err != nil {
		return err
	}

	summary, err := importDataValueSet(context.Background(), client, &dataValueSet)
	if err != nil {
		failRun(history, run, err)
		return err
	}

	if err := history.Complete(run,
		summary.ImportCount.Imported,
		summary.ImportCount.Updated,
		summary.ImportCount.Ignored,
		summary.ImportCount.Deleted,
		summary.Description); err != nil {
		log.Warn().Err(err).Msg("Failed to record run")
	}

	printImportSummary(summary)
	return nil
}

// importDataValueSet submits the import and waits for the summary. Shared by
// the import and sync commands.
func importDataValueSet(ctx context.Context, client *dhis2.Client, dataValueSet *dhis2.DataValueSet) (*dhis2.DataValueSetResponse, error) {
	options := dhis2.ImportOptions{}
	if importStrategy != "" {
		options.ImportStrategy = dhis2.ImportStrategy(importStrategy)
	}
	if importDryRun {
		options.DryRun = &importDryRun
	}

	log.Info().
		Str("dataSet", dataValueSet.DataSet).
		Int("dataValues", len(dataValueSet.DataValues)).
		Msg("Submitting data value set import")

	summary, err := client.SaveDataValueSet(ctx, dataValueSet, options)
	if err != nil {
		return nil, fmt.Errorf("import failed: %w", err)
	}
	return summary, nil
}

func printImportSummary(summary *dhis2.DataValueSetResponse) {
	fmt.Printf("Status:    %s\n", summary.Status)
	if summary.Description != "" {
		fmt.Printf("Summary:   %s\n", summary.Description)
	}
	fmt.Printf("Imported:  %d\n", summary.ImportCount.Imported)
	fmt.Printf("Updated:   %d\n", summary.ImportCount.Updated)
	fmt.Printf("Ignored:   %d\n", summary.ImportCount.Ignored)
	fmt.Printf("Deleted:   %d\n", summary.ImportCount.Deleted)

	if len(summary.Conflicts) > 0 {
		fmt.Printf("\nConflicts:\n")
		for _, conflict := range summary.Conflicts {
			fmt.Printf("  • %s: %s\n", conflict.Object, conflict.Value)
		}
	}
}
