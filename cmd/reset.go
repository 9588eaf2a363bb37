package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all journeys and rewards",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return errors.New("this deletes all journeys and rewards; re-run with --yes to confirm")
		}
		all, _ := cmd.Flags().GetBool("all")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Reset(cmd.Context(), all); err != nil {
			return err
		}
		if all {
			fmt.Fprintln(cmd.OutOrStdout(), "All journeys, rewards and settings deleted.")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "All journeys and rewards deleted.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
	resetCmd.Flags().Bool("all", false, "Also delete saved settings")
}
