package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewPageCmd creates the page command which prints one page of the collection
func NewPageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "page [number]",
		Short: "Print one page of the collection",
		Example: `  # First page
  gallery page

  # Third page with 25 rows
  GALLERY_CATALOG_PAGE_SIZE=25 gallery page 3`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid page number %q", args[0])
				}
				number = n
			}

			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			page, err := s.coord.GoToPage(cmd.Context(), number)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := renderRecords(out, page.Records, nil); err != nil {
				return err
			}
			fmt.Fprintf(out, "Page %d of %d · %d records\n", page.Number, page.TotalPages, page.Total)
			return nil
		},
	}
}
