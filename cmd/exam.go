package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/prepdrill/prepdrill/internal/exam"
	"github.com/prepdrill/prepdrill/internal/pool"
	"github.com/prepdrill/prepdrill/internal/profile"
	"github.com/prepdrill/prepdrill/internal/ui"
	"github.com/prepdrill/prepdrill/internal/ui/theme"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Run a timed mock exam",
	Long: "Runs a timed, exam-weighted mock session. Enter an option number to\n" +
		"answer, 'f' to flag, 'p' to pause, 's' to submit early, 'q' to abandon.",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		items, err := loadPool(cmd)
		if err != nil {
			return err
		}

		questions, _ := cmd.Flags().GetInt("questions")
		limitMin, _ := cmd.Flags().GetInt("time")

		s, err := eng.StartExam(cmd.Context(), items, exam.Config{
			Questions:    questions,
			TimeLimitMin: limitMin,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Exam started: %d questions, %s on the clock.\n\n",
			len(s.Items), fmtMinutes(s.TimeRemainingSec))

		reader := bufio.NewScanner(os.Stdin)
		start := time.Now()
		var paused time.Duration

		for i := 0; i < len(s.Items); i++ {
			it := s.Items[i]

			remaining := s.TimeLimitSec - int((time.Since(start) - paused).Seconds())
			result, err := eng.ExamTick(cmd.Context(), remaining)
			if err != nil {
				return err
			}
			if result != nil {
				fmt.Println(theme.Warn.Render("\nTime is up."))
				fmt.Println(ui.ExamResult(profile.Default(), *result))
				return nil
			}

			a := s.Answers[it.ID]
			flagged := a != nil && a.Flagged
			fmt.Println(ui.Question(i, len(s.Items), remaining, questionText(it), flagged))
			for j, opt := range questionOptions(it) {
				fmt.Printf("  %d) %s\n", j+1, opt)
			}

			qStart := time.Now()
			fmt.Print(theme.Hint.Render("> "))
			if !reader.Scan() {
				break
			}
			in := strings.TrimSpace(reader.Text())
			spent := int(time.Since(qStart) / time.Second)

			switch {
			case strings.EqualFold(in, "q"):
				if err := eng.ExamAbandon(cmd.Context()); err != nil {
					return err
				}
				fmt.Println("Exam abandoned; nothing was scored.")
				return nil
			case strings.EqualFold(in, "s"):
				r, err := eng.ExamSubmit(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Println(ui.ExamResult(profile.Default(), r))
				return nil
			case strings.EqualFold(in, "f"):
				if err := eng.ExamFlag(it.ID); err != nil {
					return err
				}
				i-- // stay on this question
			case strings.EqualFold(in, "p"):
				if err := eng.ExamPause(cmd.Context()); err != nil {
					return err
				}
				pauseStart := time.Now()
				fmt.Print(theme.Hint.Render("paused — press enter to resume: "))
				reader.Scan()
				paused += time.Since(pauseStart)
				if err := eng.ExamResume(cmd.Context()); err != nil {
					return err
				}
				i-- // re-show the question
			default:
				n, err := strconv.Atoi(in)
				if err != nil || n < 1 {
					fmt.Println(theme.Warn.Render("Enter an option number, f, p, s, or q."))
					i--
					continue
				}
				if err := eng.ExamAnswer(it.ID, n-1, spent); err != nil {
					return err
				}
			}
		}

		// Walked past the last question: submit whatever is answered.
		r, err := eng.ExamSubmit(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(ui.ExamResult(profile.Default(), r))
		return nil
	},
}

func init() {
	examCmd.Flags().Int("questions", 0, "Question count (default: full-length exam)")
	examCmd.Flags().Int("time", 0, "Time limit in minutes (default: full-length exam)")
}

func questionText(it pool.Item) string {
	var p questionPayload
	if err := json.Unmarshal(it.Payload, &p); err != nil || p.Question == "" {
		return it.ID
	}
	return p.Question
}

func questionOptions(it pool.Item) []string {
	var p questionPayload
	if err := json.Unmarshal(it.Payload, &p); err != nil {
		return nil
	}
	return p.Options
}

func fmtMinutes(sec int) string {
	return fmt.Sprintf("%dm", sec/60)
}
