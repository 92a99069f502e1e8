package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/ecycle/internal/api/client"
)

func quoteCmd() *cobra.Command {
	var (
		condition string
		bulk      bool
		quantity  int
	)

	cmd := &cobra.Command{
		Use:   "quote <category>",
		Short: "Price a device without saving anything",
		Long: "Price a device category. Individual conditions are Excellent, Good,\n" +
			"Fair and Poor; bulk conditions are WORKING, DAMAGED and SCRAP.",
		Example: `  # Individual quote
  ecy quote Laptop --condition Good

  # Bulk quote for three scrap phones
  ecy quote Smartphone --bulk --condition SCRAP --quantity 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if quantity < 1 {
				return errors.New("--quantity must be at least 1")
			}
			q, err := newClient().Quote(cmd.Context(), apiclient.QuoteRequest{
				Category:  args[0],
				Condition: condition,
				Bulk:      bulk,
				Quantity:  quantity,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), q)
			}
			return printQuote(cmd.OutOrStdout(), q)
		},
	}

	cmd.Flags().StringVar(&condition, "condition", "", "device condition")
	cmd.Flags().BoolVar(&bulk, "bulk", false, "use the bulk condition table")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "number of units")

	return cmd
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Short:   "List device categories with base prices",
		Example: `  ecy categories --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := newClient().Categories(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), cats)
			}
			if len(cats) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No categories found.")
				return nil
			}
			return printCategoriesTable(cmd.OutOrStdout(), cats)
		},
	}
}
