package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/prepdrill/prepdrill/internal/schedule"
	"github.com/prepdrill/prepdrill/internal/ui"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Generate a study plan toward your exam date",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateStr, _ := cmd.Flags().GetString("date")
		if dateStr == "" {
			return fmt.Errorf("--date is required (format: 2006-01-02)")
		}
		target, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return fmt.Errorf("parse --date %q: %w", dateStr, err)
		}

		weekday, _ := cmd.Flags().GetFloat64("weekday-hours")
		weekend, _ := cmd.Flags().GetFloat64("weekend-hours")
		avail := schedule.Availability{
			time.Monday:    weekday,
			time.Tuesday:   weekday,
			time.Wednesday: weekday,
			time.Thursday:  weekday,
			time.Friday:    weekday,
			time.Saturday:  weekend,
			time.Sunday:    weekend,
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		plan, err := eng.Schedule(target, avail)
		if errors.Is(err, schedule.ErrPastTarget) {
			return fmt.Errorf("exam date %s is not in the future", dateStr)
		}
		if err != nil {
			return err
		}
		fmt.Println(ui.Plan(plan))
		return nil
	},
}

func init() {
	scheduleCmd.Flags().String("date", "", "Exam date (2006-01-02)")
	scheduleCmd.Flags().Float64("weekday-hours", 2, "Study hours per weekday")
	scheduleCmd.Flags().Float64("weekend-hours", 4, "Study hours per weekend day")
}
