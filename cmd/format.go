package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/grovetools/core/logging"
	"github.com/grovetools/tocfmt/internal/clip"
	"github.com/grovetools/tocfmt/internal/display"
	"github.com/grovetools/tocfmt/internal/outline"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var ulogFormat = logging.NewUnifiedLogger("tocfmt.cmd.format")

// clipboardBackend is the clipboard used by --paste and --copy.
var clipboardBackend interface {
	clip.Reader
	clip.Writer
} = clip.System{}

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Normalize a chapter listing",
		Long: `Normalize a pasted chapter/timestamp listing into a clean outline.

Input is read from the file argument, from stdin when the argument is missing
or "-", or from the system clipboard with --paste. Volume and DVD headers are
title-cased, timestamps are padded uniformly per block and lines without a
header or timestamp are dropped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger("format")
			cfg, err := loadSettings(cmd, logger)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("color") {
				cfg.Format.Color, _ = cmd.Flags().GetString("color")
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("marker") {
				cfg.Format.Markers, _ = cmd.Flags().GetStringSlice("marker")
			}
			copyOut, _ := cmd.Flags().GetBool("copy")
			copyOut = copyOut || cfg.Clipboard.Copy
			paste, _ := cmd.Flags().GetBool("paste")
			asJSON, _ := cmd.Flags().GetBool("json")
			asTable, _ := cmd.Flags().GetBool("table")
			if asJSON && asTable {
				return fmt.Errorf("--json and --table cannot be combined")
			}

			raw, err := readInput(cmd, args, paste)
			if err != nil {
				return err
			}

			n := outline.New(
				outline.WithMarkers(cfg.Format.Markers),
				outline.WithLogger(newLogger("outline")),
			)
			o := n.Parse(raw)

			logger.WithField("headers", len(o.Headers())).
				WithField("entries", len(o.Entries())).
				WithField("dropped", o.Dropped).
				Debug("Normalized listing")

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				data, err := json.MarshalIndent(o, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding outline: %w", err)
				}
				fmt.Fprintln(out, string(data))
			case asTable:
				if err := display.PrintEntriesTable(o, out); err != nil {
					return err
				}
			default:
				if err := display.WriteOutline(out, o, display.ShouldColor(cfg.Format.Color, out)); err != nil {
					return err
				}
			}

			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				ulogFormat.Info("Normalized listing").
					Field("headers", len(o.Headers())).
					Field("entries", len(o.Entries())).
					Field("dropped", o.Dropped).
					Pretty(fmt.Sprintf("%d headers, %d entries, %d lines dropped\n", len(o.Headers()), len(o.Entries()), o.Dropped)).
					PrettyOnly().
					Emit()
			}

			if copyOut {
				copyOutline(cmd, o.String(), cfg.Clipboard.NotifyAfter, logger)
			}
			return nil
		},
	}

	cmd.Flags().Bool("paste", false, "Read the listing from the system clipboard")
	cmd.Flags().Bool("copy", false, "Copy the normalized outline to the system clipboard")
	cmd.Flags().Bool("json", false, "Print the parsed outline as JSON")
	cmd.Flags().Bool("table", false, "Print entries as a table grouped by header")
	cmd.Flags().String("color", display.ColorAuto, "Style output: auto, always or never. Overrides config.")
	cmd.Flags().StringSlice("marker", nil, "Literal text removed from every line (repeatable). Overrides config.")

	return cmd
}

func readInput(cmd *cobra.Command, args []string, paste bool) (string, error) {
	if paste {
		if len(args) > 0 {
			return "", fmt.Errorf("--paste cannot be combined with a file argument")
		}
		text, err := clipboardBackend.ReadAll()
		if err != nil {
			return "", fmt.Errorf("reading clipboard: %w", err)
		}
		return text, nil
	}

	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// copyOutline copies text and reports the outcome on stderr. A failed copy
// does not fail the command since the outline has already been printed.
func copyOutline(cmd *cobra.Command, text string, notifyAfter time.Duration, logger *logrus.Entry) {
	stderr := cmd.ErrOrStderr()
	toast := display.NewToast(stderr, notifyAfter, false)
	defer toast.Close()

	copier := clip.NewCopier(clipboardBackend, toast, logger)
	err := <-copier.CopyAsync(cmd.Context(), text)
	switch {
	case errors.Is(err, clip.ErrEmpty):
		fmt.Fprintln(stderr, "Nothing to copy")
	case err != nil:
		fmt.Fprintf(stderr, "Could not copy text: %v\n", err)
	}
}
