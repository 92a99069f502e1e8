package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/ecycle/internal/api/client"
)

func bulkCmd() *cobra.Command {
	bulkRoot := &cobra.Command{
		Use:   "bulk",
		Short: "Submit and manage bulk pickups",
		Long: "Submit organization bulk pickups from inline items and CSV or Excel\n" +
			"inventories, preview reconciliation results and manage collection.",
	}

	bulkRoot.AddCommand(
		bulkPreviewCmd(),
		bulkSubmitCmd(),
		bulkListCmd(),
		bulkGetCmd(),
		bulkUpdateCmd(),
	)

	return bulkRoot
}

// itemFlags are the inline rows and inventory file shared by preview and
// submit.
type itemFlags struct {
	items []string
	file  string
}

func (f *itemFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.items, "item", nil,
		"inline item as type:quantity[:condition[:model[:notes]]], repeatable")
	cmd.Flags().StringVar(&f.file, "file", "", "CSV, XLS or XLSX inventory file")
}

func (f *itemFlags) form() (apiclient.BulkForm, error) {
	var form apiclient.BulkForm
	for _, s := range f.items {
		row, err := parseItem(s)
		if err != nil {
			return form, err
		}
		form.Rows = append(form.Rows, row)
	}
	if f.file != "" {
		data, err := os.ReadFile(f.file)
		if err != nil {
			return form, fmt.Errorf("reading inventory: %w", err)
		}
		form.File = &apiclient.FormFile{Filename: filepath.Base(f.file), Data: data}
	}
	if len(form.Rows) == 0 && form.File == nil {
		return form, errors.New("at least one --item or a --file is required")
	}
	return form, nil
}

// parseItem reads type:quantity[:condition[:model[:notes]]]. Notes may
// contain colons.
func parseItem(s string) (apiclient.BulkRow, error) {
	parts := strings.SplitN(s, ":", 5)
	if len(parts) < 2 || strings.TrimSpace(parts[0]) == "" {
		return apiclient.BulkRow{}, fmt.Errorf("invalid item %q: want type:quantity", s)
	}
	row := apiclient.BulkRow{Type: parts[0], Quantity: parts[1], Condition: "WORKING"}
	if len(parts) > 2 && parts[2] != "" {
		row.Condition = strings.ToUpper(parts[2])
	}
	if len(parts) > 3 {
		row.Model = parts[3]
	}
	if len(parts) > 4 {
		row.Notes = parts[4]
	}
	return row, nil
}

func bulkPreviewCmd() *cobra.Command {
	var items itemFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Reconcile items without submitting",
		Example: `  ecy bulk preview --item Laptop:10:WORKING --item Smartphone:25:SCRAP
  ecy bulk preview --file inventory.xlsx`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, err := items.form()
			if err != nil {
				return err
			}
			batch, err := newClient().PreviewBulk(cmd.Context(), form)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), batch)
			}
			return printBatch(cmd.OutOrStdout(), batch)
		},
	}

	items.register(cmd)

	return cmd
}

func bulkSubmitCmd() *cobra.Command {
	var (
		items  itemFlags
		userID int64
		fields = map[string]*string{}
		accept bool
		cert   bool
		tax    bool
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a bulk pickup",
		Long: "Submit a bulk pickup for an organization. Rows that cannot be read are\n" +
			"skipped and reported; --accept confirms eligibility, the pickup policy\n" +
			"and that final points are set after inspection.",
		Example: `  ecy bulk submit --user 1 --org "Green Valley School" --org-type School \
    --contact "R. Iyer" --email facilities@gvs.example --phone "+91 98765 43210" \
    --address "1 School Lane" --date 2026-03-14T10:30 \
    --file inventory.csv --certificate --accept`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !accept {
				return errors.New("--accept is required to confirm the pickup terms")
			}
			form, err := items.form()
			if err != nil {
				return err
			}
			form.Fields = map[string]string{
				"user_id":            strconv.FormatInt(userID, 10),
				"confirm_eligible":   "on",
				"agree_policy":       "on",
				"acknowledge_points": "on",
			}
			for name, v := range fields {
				if *v != "" {
					form.Fields[name] = *v
				}
			}
			if cert {
				form.Fields["request_certificate"] = "on"
			}
			if tax {
				form.Fields["request_tax_receipt"] = "on"
			}

			sub, err := newClient().SubmitBulk(cmd.Context(), form)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), sub)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bulk pickup %d submitted.\n\n", sub.Pickup.ID)
			return printBatch(cmd.OutOrStdout(), sub.Batch)
		},
	}

	items.register(cmd)
	cmd.Flags().Int64Var(&userID, "user", 0, "submitting user ID (required)")
	for _, f := range []struct{ flag, field, usage string }{
		{"org", "organization_name", "organization name (required)"},
		{"org-type", "organization_type", "Office, School, College, Government, Non-Profit, Healthcare or Other"},
		{"contact", "contact_person", "contact person (required)"},
		{"email", "contact_email", "contact email (required)"},
		{"phone", "contact_phone", "contact phone (required)"},
		{"address", "pickup_address", "pickup address (required)"},
		{"gstin", "gstin", "GST identification number"},
		{"date", "preferred_date", "preferred date, YYYY-MM-DDTHH:MM (required)"},
		{"instructions", "special_instructions", "special instructions for the team"},
	} {
		fields[f.field] = cmd.Flags().String(f.flag, "", f.usage)
	}
	cmd.Flags().BoolVar(&cert, "certificate", false, "request a disposal certificate")
	cmd.Flags().BoolVar(&tax, "tax-receipt", false, "request a tax receipt")
	cmd.Flags().BoolVar(&accept, "accept", false, "accept the pickup terms")

	for _, f := range []string{"user", "org", "contact", "email", "phone", "address", "date"} {
		cobra.CheckErr(cmd.MarkFlagRequired(f))
	}

	return cmd
}

func bulkListCmd() *cobra.Command {
	var p apiclient.BulkListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bulk pickups with optional filters",
		Example: `  ecy bulk list --status Scheduled
  ecy bulk list --org "green valley" --order-by total_items --limit 20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListBulkPickups(cmd.Context(), p)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			if len(resp.BulkPickups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No bulk pickups found.")
				return nil
			}
			if err := printBulkPickupsTable(cmd.OutOrStdout(), resp.BulkPickups); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d of %d (offset %d)\n",
				len(resp.BulkPickups), resp.Total, resp.Offset)
			return nil
		},
	}

	cmd.Flags().StringVar(&p.Status, "status", "", "filter by status")
	cmd.Flags().Int64Var(&p.UserID, "user", 0, "filter by submitting user")
	cmd.Flags().StringVar(&p.Organization, "org", "", "filter by organization name substring")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&p.Offset, "offset", 0, "page offset")
	cmd.Flags().StringVar(&p.OrderBy, "order-by", "", "created_at, preferred_date or total_items")

	return cmd
}

func bulkGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show a bulk pickup and its items",
		Example: `  ecy bulk get 42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d, err := newClient().GetBulkPickup(cmd.Context(), id)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), d)
			}
			return printBulkPickupDetail(cmd.OutOrStdout(), d)
		},
	}
}

func bulkUpdateCmd() *cobra.Command {
	var (
		status string
		team   string
		points int
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update status, team or final points",
		Example: `  ecy bulk update 42 --status Collected --points 310
  ecy bulk update 42 --team "North Crew"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var u apiclient.BulkUpdate
			if cmd.Flags().Changed("status") {
				u.Status = &status
			}
			if cmd.Flags().Changed("team") {
				u.AssignedTeam = &team
			}
			if cmd.Flags().Changed("points") {
				u.ActualEcoPoints = &points
			}
			if u.Status == nil && u.AssignedTeam == nil && u.ActualEcoPoints == nil {
				return errors.New("nothing to update: set --status, --team or --points")
			}

			b, err := newClient().UpdateBulkPickup(cmd.Context(), id, u)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), b)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bulk pickup %d is now %s.\n", b.ID, b.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Pending, Scheduled, Collected, Verified or Cancelled")
	cmd.Flags().StringVar(&team, "team", "", "assigned collection team")
	cmd.Flags().IntVar(&points, "points", 0, "actual eco points after inspection")

	return cmd
}
