package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent import and export runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	history, err := openStore()
	if err != nil {
		return err
	}
	defer history.Close()

	runs, err := history.Recent(historyLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%s  %-7s %-9s", run.StartedAt.Format("2006-01-02 15:04:05"), run.Kind, run.Status)
		if run.DataSet != "" {
			fmt.Printf("  dataSet=%s", run.DataSet)
		}
		if run.Period != "" {
			fmt.Printf("  period=%s", run.Period)
		}
		if run.Imported+run.Updated+run.Ignored+run.Deleted > 0 {
			fmt.Printf("  imported=%d updated=%d ignored=%d deleted=%d",
				run.Imported, run.Updated, run.Ignored, run.Deleted)
		}
		if run.Message != "" {
			fmt.Printf("  %s", run.Message)
		}
		fmt.Println()
	}
	return nil
}
