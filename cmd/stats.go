package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepdrill/prepdrill/internal/profile"
	"github.com/prepdrill/prepdrill/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		fmt.Println(ui.Stats(profile.Default(), eng.Performance(), eng.Difficulty(), eng.DueReviews()))

		if history := eng.ExamHistory(); len(history) > 0 {
			fmt.Println("\nRecent mock exams:")
			for _, r := range history {
				verdict := "fail"
				if r.Passed {
					verdict = "pass"
				}
				fmt.Printf("  %s  score %d (%s, %d/%d)\n",
					r.CompletedAt.Format("2006-01-02"), r.ScaledScore, verdict, r.CorrectCount, r.QuestionCount)
			}
		}
		return nil
	},
}
