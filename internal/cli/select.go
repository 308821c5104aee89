package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmcdole/gallery/internal/selection"
)

// NewSelectCmd creates the select command which selects the first N records
// of the collection, fetching pages until the request is satisfied
func NewSelectCmd() *cobra.Command {
	var from int

	cmd := &cobra.Command{
		Use:   "select <count>",
		Short: "Select the first N records of the collection",
		Long: `Selects the first N records in catalog order. The records visible on the
starting page are selected immediately; the remainder is taken from the
following pages as they are fetched.`,
		Example: `  # Select the first 30 artworks
  gallery select 30

  # Start counting from the second page
  gallery select 30 --from 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := selection.ParseCountStrict(args[0])
			if err != nil {
				return err
			}

			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			if _, err := s.coord.GoToPage(ctx, from); err != nil {
				return err
			}

			target := s.coord.RequestSelectCount(n)
			if err := s.coord.DrainPending(ctx); err != nil {
				return err
			}

			view := s.coord.View()
			sel := s.coord.Selection()
			out := cmd.OutOrStdout()
			if err := renderRecords(out, sel.Selected(), sel.IsSelected); err != nil {
				return err
			}

			fmt.Fprintf(out, "Selected %d of %d across pages %d-%d\n",
				sel.Len(), target, from, view.State.PageNumber)
			if target < n {
				fmt.Fprintf(out, "Requested %d, capped at the collection size of %d\n", n, target)
			}
			if pending, ok := sel.Pending(); ok {
				fmt.Fprintf(out, "%d still pending\n", pending)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 1, "page to start selecting from")

	return cmd
}
