package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/dhis2go/dhis2"
)

var (
	syncCron     string
	syncTimezone string
)

var syncCmd = &cobra.Command{
	Use:   "sync <file>",
	Short: "Import a data value set file on a recurring schedule",
	Long: `Runs the import of the given data value set file on a cron schedule
until interrupted. Accepts standard 5-field cron expressions as well as
6-field expressions with a leading seconds field. Each run is recorded in
the task history.`,
	Args: cobra.ExactArgs(1),
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncCron, "cron", "0 2 * * *", "cron schedule (5 or 6 fields)")
	syncCmd.Flags().StringVar(&syncTimezone, "timezone", "UTC", "IANA timezone for the schedule")
}

func runSync(cmd *cobra.Command, args []string) error {
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

	schedule, err := normalizeCron(syncCron)
	if err != nil {
		return err
	}

	location, err := loadLocation(syncTimezone)
	if err != nil {
		return err
	}

	scheduler := cron.New(cron.WithSeconds(), cron.WithLocation(location))

	entryID, err := scheduler.AddFunc(schedule, func() {
		run, err := history.Begin("sync", dataValueSet.DataSet, dataValueSet.Period, dataValueSet.OrgUnit)
		if err != nil {
			log.Error().Err(err).Msg("Failed to record sync run")
			return
		}

		summary, err := importDataValueSet(context.Background(), client, &dataValueSet)
		if err != nil {
			log.Error().Err(err).Msg("Sync run failed")
			failRun(history, run, err)
			return
		}

		if err := history.Complete(run,
			summary.ImportCount.Imported,
			summary.ImportCount.Updated,
			summary.ImportCount.Ignored,
			summary.ImportCount.Deleted,
			summary.Description); err != nil {
			log.Warn().Err(err).Msg("Failed to record run")
		}

		log.Info().
			Int("imported", summary.ImportCount.Imported).
			Int("updated", summary.ImportCount.Updated).
			Int("ignored", summary.ImportCount.Ignored).
			Msg("Sync run complete")
	})
	if err != nil {
		return fmt.Errorf("failed to schedule sync: %w", err)
	}

	scheduler.Start()
	defer scheduler.Stop()

	log.Info().
		Str("cron", schedule).
		Str("timezone", syncTimezone).
		Str("next", scheduler.Entry(entryID).Next.Format("2006-01-02 15:04:05")).
		Msg("Sync scheduled, press Ctrl+C to stop")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("Stopping sync")
	return nil
}

func loadLocation(name string) (*time.Location, error) {
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return location, nil
}

// normalizeCron converts 5-field cron to 6-field format by prepending the
// seconds field expected by the scheduler.
func normalizeCron(cronExpr string) (string, error) {
	cronExpr = strings.TrimSpace(cronExpr)
	fields := strings.Fields(cronExpr)

	if len(fields) == 6 {
		parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
		if _, err := parser.Parse(cronExpr); err != nil {
			return "", fmt.Errorf("invalid 6-field cron expression: %w", err)
		}
		return cronExpr, nil
	}

	if len(fields) == 5 {
		if _, err := cron.ParseStandard(cronExpr); err != nil {
			return "", fmt.Errorf("invalid 5-field cron expression: %w", err)
		}
		// Run at second 0 of the matching minute
		return "0 " + cronExpr, nil
	}

	return "", fmt.Errorf("cron expression must have 5 or 6 fields, got %d", len(fields))
}
