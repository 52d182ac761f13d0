package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepdrill/prepdrill/internal/pool"
)

var recordCmd = &cobra.Command{
	Use:   "record <item-id> <correct|incorrect>",
	Short: "Record an answer taken outside the drill loop",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID := args[0]
		var correct bool
		switch args[1] {
		case "correct", "right", "y":
			correct = true
		case "incorrect", "wrong", "n":
			correct = false
		default:
			return fmt.Errorf("result must be 'correct' or 'incorrect', got %q", args[1])
		}

		items, err := loadPool(cmd)
		if err != nil {
			return err
		}
		it, ok := pool.ByID(items)[itemID]
		if !ok {
			return fmt.Errorf("item %q not found in the question pool", itemID)
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		if err := eng.RecordAnswer(cmd.Context(), it.ID, it.TopicID, correct, it.ConceptTags); err != nil {
			return err
		}
		fmt.Printf("Recorded %s for %s; difficulty now %s\n", args[1], itemID, eng.Difficulty())
		return nil
	},
}
