package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/ecycle/internal/api/client"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

func pickupsCmd() *cobra.Command {
	pickupsRoot := &cobra.Command{
		Use:   "pickups",
		Short: "Schedule and track individual pickups",
	}

	pickupsRoot.AddCommand(
		pickupsScheduleCmd(),
		pickupsGetCmd(),
		pickupsCollectCmd(),
	)

	return pickupsRoot
}

func pickupsScheduleCmd() *cobra.Command {
	var (
		userID    int64
		category  string
		model     string
		ram       string
		condition string
		date      string
		address   string
		label     string
		image     string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule a pickup for one device",
		Long: "Schedule a pickup. The device is priced on the server and the user\n" +
			"is credited the eco points and carbon savings immediately.",
		Example: `  ecy pickups schedule --user 1 --category Laptop --condition Good \
    --date 2026-05-02T10:00 --address "12 Park Street"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			when, err := parsePickupDate(date)
			if err != nil {
				return err
			}
			p, err := newClient().SchedulePickup(cmd.Context(), apiclient.PickupRequest{
				UserID:              userID,
				Category:            category,
				Model:               model,
				RAM:                 ram,
				Condition:           condition,
				PickupDate:          when,
				Address:             address,
				ClassificationLabel: label,
				ImagePath:           image,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			return printPickupDetail(cmd.OutOrStdout(), p)
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user ID (required)")
	cmd.Flags().StringVar(&category, "category", "", "device category (required)")
	cmd.Flags().StringVar(&model, "model", "", "device model")
	cmd.Flags().StringVar(&ram, "ram", "", "installed memory")
	cmd.Flags().StringVar(&condition, "condition", "Good", "Excellent, Good, Fair or Poor")
	cmd.Flags().StringVar(&date, "date", "", "pickup date, YYYY-MM-DDTHH:MM or RFC 3339 (required)")
	cmd.Flags().StringVar(&address, "address", "", "pickup address (required)")
	cmd.Flags().StringVar(&label, "label", "", "classifier label for the device photo")
	cmd.Flags().StringVar(&image, "image", "", "stored image path from a previous classify")

	for _, f := range []string{"user", "category", "date", "address"} {
		cobra.CheckErr(cmd.MarkFlagRequired(f))
	}

	return cmd
}

func parsePickupDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

func pickupsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show pickup details",
		Example: `  ecy pickups get 11`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := newClient().GetPickup(cmd.Context(), id)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			return printPickupDetail(cmd.OutOrStdout(), p)
		},
	}
}

func pickupsCollectCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "collect <id>",
		Short:   "Mark a pickup as collected",
		Example: `  ecy pickups collect 11`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := newClient().SetPickupStatus(cmd.Context(), id, domain.PickupCollected); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pickup %d marked collected.\n", id)
			return nil
		},
	}
}
