package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prepdrill/prepdrill/internal/pool"
	"github.com/prepdrill/prepdrill/internal/profile"
	"github.com/prepdrill/prepdrill/internal/selector"
	"github.com/prepdrill/prepdrill/internal/ui/theme"
)

// questionPayload is the presentation shape of an item's opaque payload.
// Only the CLI decodes it; the engine never looks inside.
type questionPayload struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Practice an adaptive question set",
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

		count, _ := cmd.Flags().GetInt("count")
		topicArgs, _ := cmd.Flags().GetStringSlice("topics")
		var topics []profile.TopicID
		for _, t := range topicArgs {
			topics = append(topics, profile.TopicID(t))
		}

		sel, err := eng.Selection(cmd.Context(), items, selector.Criteria{
			Topics:           topics,
			Count:            count,
			ExcludeRecent:    true,
			PrioritizeWeak:   true,
			IncludeReviewDue: true,
			ExamWeighted:     true,
		})
		if err != nil {
			return err
		}
		if len(sel.Items) == 0 {
			fmt.Println("No questions available. Check the pool file and topic filters.")
			return nil
		}
		if sel.Shortfall > 0 {
			fmt.Println(theme.Warn.Render(fmt.Sprintf("Pool is short by %d questions; drilling %d.", sel.Shortfall, len(sel.Items))))
		}

		reader := bufio.NewScanner(os.Stdin)
		correct := 0
		answered := 0
		for i, it := range sel.Items {
			fmt.Println()
			fmt.Println(theme.Subtitle.Render(fmt.Sprintf("Question %d of %d  [%s / %s]", i+1, len(sel.Items), it.TopicID, it.Difficulty)))
			renderQuestion(it)

			choice, quit := promptChoice(reader, it)
			if quit {
				break
			}
			ok := choice == it.Answer
			if ok {
				correct++
				fmt.Println(theme.Good.Render("Correct."))
			} else {
				fmt.Println(theme.Bad.Render(fmt.Sprintf("Incorrect — answer was %d.", it.Answer+1)))
			}
			answered++
			if err := eng.RecordAnswer(cmd.Context(), it.ID, it.TopicID, ok, it.ConceptTags); err != nil {
				return err
			}
		}

		if answered > 0 {
			fmt.Println()
			fmt.Printf("Session: %d/%d correct, difficulty now %s\n", correct, answered, eng.Difficulty())
		}
		return nil
	},
}

func init() {
	drillCmd.Flags().Int("count", 10, "Number of questions to drill")
	drillCmd.Flags().StringSlice("topics", nil, "Restrict to these topic IDs")
}

func renderQuestion(it pool.Item) {
	var p questionPayload
	if err := json.Unmarshal(it.Payload, &p); err != nil || p.Question == "" {
		fmt.Println(theme.Body.Render(it.ID))
		return
	}
	fmt.Println(theme.Body.Render(p.Question))
	for i, opt := range p.Options {
		fmt.Printf("  %d) %s\n", i+1, opt)
	}
}

// promptChoice reads a 1-based option number, or q to stop.
func promptChoice(reader *bufio.Scanner, it pool.Item) (choice int, quit bool) {
	options := optionCount(it)
	for {
		fmt.Print(theme.Hint.Render("answer (number, q to quit): "))
		if !reader.Scan() {
			return 0, true
		}
		in := strings.TrimSpace(reader.Text())
		if strings.EqualFold(in, "q") {
			return 0, true
		}
		n, err := strconv.Atoi(in)
		if err == nil && n >= 1 && (options == 0 || n <= options) {
			return n - 1, false
		}
		fmt.Println(theme.Warn.Render("Enter an option number."))
	}
}

func optionCount(it pool.Item) int {
	var p questionPayload
	if err := json.Unmarshal(it.Payload, &p); err != nil {
		return 0
	}
	return len(p.Options)
}
