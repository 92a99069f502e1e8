package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <image>",
		Short: "Identify a device from a photo",
		Long: "Upload a JPEG, PNG, GIF, WebP, BMP or TIFF photo and print the detected\n" +
			"category, confidence and recycling guidance.",
		Example: `  ecy classify ./old-phone.jpg`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading image: %w", err)
			}
			cls, err := newClient().Classify(cmd.Context(), filepath.Base(args[0]), data)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), cls)
			}
			return printClassification(cmd.OutOrStdout(), &cls.Classification, cls.ImagePath)
		},
	}
}
