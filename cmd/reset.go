package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all practice history and exam results",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("This erases all practice history and exam results. Type 'yes' to continue: ")
			reader := bufio.NewScanner(os.Stdin)
			if !reader.Scan() || strings.TrimSpace(reader.Text()) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		if err := eng.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("All learner data has been reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
