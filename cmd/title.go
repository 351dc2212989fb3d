package cmd

import (
	"fmt"
	"strings"

	"github.com/grovetools/tocfmt/internal/titlecase"
	"github.com/spf13/cobra"
)

func newTitleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "title <text...>",
		Short: "Title-case a line of text",
		Long:  "Title-case the arguments joined by spaces, keeping articles, conjunctions and short prepositions lowercase inside the title.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), titlecase.String(strings.Join(args, " ")))
			return err
		},
	}

	return cmd
}
