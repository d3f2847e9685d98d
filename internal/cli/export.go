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
	exportDataSets  []string
	exportPeriods   []string
	exportOrgUnits  []string
	exportStartDate string
	exportEndDate   string
	exportChildren  bool
	exportOutFile   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a data value set to a JSON file",
	Long: `Exports the data values matching the given data sets, periods and
organisation units. Writes JSON to the output file, or stdout when no file
is given.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringSliceVar(&exportDataSets, "data-set", nil, "data set UID (repeatable)")
	exportCmd.Flags().StringSliceVar(&exportPeriods, "period", nil, "ISO period, e.g. 202401 (repeatable)")
	exportCmd.Flags().StringSliceVar(&exportOrgUnits, "org-unit", nil, "organisation unit UID (repeatable)")
	exportCmd.Flags().StringVar(&exportStartDate, "start-date", "", "start date (2006-01-02), alternative to periods")
	exportCmd.Flags().StringVar(&exportEndDate, "end-date", "", "end date (2006-01-02), alternative to periods")
	exportCmd.Flags().BoolVar(&exportChildren, "children", false, "include child org units")
	exportCmd.Flags().StringVarP(&exportOutFile, "out", "o", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	if len(exportDataSets) == 0 {
		return fmt.Errorf("at least one --data-set is required")
	}
	if len(exportOrgUnits) == 0 {
		return fmt.Errorf("at least one --org-unit is required")
	}
	if len(exportPeriods) == 0 && (exportStartDate == "" || exportEndDate == "") {
		return fmt.Errorf("either --period or both --start-date and --end-date are required")
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	history, err := openStore()
	if err != nil {
		return err
	}
	defer history.Close()

	run, err := history.Begin("export", joinFirst(exportDataSets), joinFirst(exportPeriods), joinFirst(exportOrgUnits))
	if err != nil {
		return err
	}

	log.Info().
		Strs("dataSets", exportDataSets).
		Strs("orgUnits", exportOrgUnits).
		Msg("Exporting data value set")

	dataValueSet, err := client.GetDataValueSet(context.Background(), dhis2.DataValueSetQuery{
		DataSets:  exportDataSets,
		Periods:   exportPeriods,
		OrgUnits:  exportOrgUnits,
		StartDate: exportStartDate,
		EndDate:   exportEndDate,
		Children:  exportChildren,
	})
	if err != nil {
		failRun(history, run, err)
		return fmt.Errorf("export failed: %w", err)
	}

	out := os.Stdout
	if exportOutFile != "" {
		out, err = os.Create(exportOutFile)
		if err != nil {
			failRun(history, run, err)
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer out.Close()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(dataValueSet); err != nil {
		failRun(history, run, err)
		return fmt.Errorf("failed to write output: %w", err)
	}

	message := fmt.Sprintf("%d data values exported", len(dataValueSet.DataValues))
	if err := history.Complete(run, 0, 0, 0, 0, message); err != nil {
		log.Warn().Err(err).Msg("Failed to record run")
	}

	log.Info().Int("dataValues", len(dataValueSet.DataValues)).Msg("Export complete")
	return nil
}

func joinFirst(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
