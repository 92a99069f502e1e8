package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func rewardsCmd() *cobra.Command {
	rewardsRoot := &cobra.Command{
		Use:   "rewards",
		Short: "Browse and redeem rewards",
	}

	rewardsRoot.AddCommand(
		rewardsListCmd(),
		rewardsRedeemCmd(),
	)

	return rewardsRoot
}

func rewardsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List active rewards",
		Example: `  ecy rewards list`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rewards, err := newClient().ListRewards(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), rewards)
			}
			if len(rewards) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No rewards available.")
				return nil
			}
			return printRewardsTable(cmd.OutOrStdout(), rewards)
		},
	}
}

func rewardsRedeemCmd() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:     "redeem <reward-id>",
		Short:   "Spend eco points on a reward",
		Example: `  ecy rewards redeem 2 --user 1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rewardID, err := parseID(args[0])
			if err != nil {
				return err
			}
			r, err := newClient().RedeemReward(cmd.Context(), userID, rewardID)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), r)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Redemption %d: %d points spent, status %s.\n",
				r.ID, r.PointsSpent, r.Status)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "redeeming user ID (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("user"))

	return cmd
}
