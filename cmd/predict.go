package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepdrill/prepdrill/internal/profile"
	"github.com/prepdrill/prepdrill/internal/ui"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict your exam score and pass probability",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		fmt.Println(ui.Prediction(profile.Default(), eng.Prediction()))
		return nil
	},
}
