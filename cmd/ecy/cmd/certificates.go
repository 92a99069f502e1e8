package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/ecycle/internal/certificate"
)

func certificatesCmd() *cobra.Command {
	var htmlOut string

	cmd := &cobra.Command{
		Use:   "certificate <bulk|pickup> <id>",
		Short: "Fetch a disposal certificate",
		Long: "Fetch the disposal certificate of a collected pickup. With --html the\n" +
			"printable page is written to a file instead.",
		Example: `  ecy certificate bulk 42
  ecy certificate pickup 11 --html cert.html`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"bulk", "pickup"},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[1])
			if err != nil {
				return err
			}

			c := newClient()
			kind := args[0]
			if kind != "bulk" && kind != "pickup" {
				return fmt.Errorf("unknown certificate kind %q", kind)
			}

			if htmlOut != "" {
				path := "bulk"
				if kind == "pickup" {
					path = "pickups"
				}
				page, err := c.CertificatePage(cmd.Context(), path, id)
				if err != nil {
					return err
				}
				if err := os.WriteFile(htmlOut, page, 0o644); err != nil {
					return fmt.Errorf("writing certificate: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Certificate written to %s\n", htmlOut)
				return nil
			}

			var s *certificate.Summary
			if kind == "bulk" {
				s, err = c.BulkCertificate(cmd.Context(), id)
			} else {
				s, err = c.PickupCertificate(cmd.Context(), id)
			}
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), s)
			}
			return printCertificate(cmd.OutOrStdout(), s)
		},
	}

	cmd.Flags().StringVar(&htmlOut, "html", "", "write the printable HTML page to this file")

	return cmd
}
