package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cardcycle/cardcycle/internal/store"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the day log as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("output")
			format, _ := cmd.Flags().GetString("format")
			if !cmd.Flags().Changed("format") && path != "" {
				format = store.FormatForPath(path)
			}
			return withApp(cmd, func(a *app) error {
				doc, err := a.days.Export(cmd.Context())
				if err != nil {
					return err
				}

				if path == "" || path == "-" {
					return store.EncodeDayLogAs(cmd.OutOrStdout(), doc, format)
				}
				return writeDayLog(path, doc, format)
			})
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	cmd.Flags().String("format", store.FormatJSON, "Document format: json or yaml (default from the file extension)")
	return cmd
}

// writeDayLog writes doc to path. The close error is returned since it may
// carry the failed flush.
func writeDayLog(path string, doc *store.DayLogDocument, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := store.EncodeDayLogAs(f, doc, format); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Load a day log exported by `cardcycle export` into an empty database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if !cmd.Flags().Changed("format") {
				format = store.FormatForPath(args[0])
			}

			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open %s: %w", args[0], err)
				}
				defer f.Close()
				r = f
			}
			doc, err := store.DecodeDayLogAs(r, format)
			if err != nil {
				return err
			}

			return withApp(cmd, func(a *app) error {
				if err := a.days.Import(cmd.Context(), doc); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d completed and %d skipped days\n",
					len(doc.CompletedDays), len(doc.SkippedDays))
				return nil
			})
		},
	}
	cmd.Flags().String("format", store.FormatJSON, "Document format: json or yaml (default from the file extension)")
	return cmd
}
