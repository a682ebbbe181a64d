package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/bucketdrop/internal/filetree"
	"github.com/dmitrijs2005/bucketdrop/internal/models"
	"github.com/spf13/cobra"
)

var headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)

func newListCmd(app func() *App) *cobra.Command {
	var (
		search string
		sorted bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List objects in the bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			records, err := a.load(cmd, search, sorted)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}

			if len(records) == 0 {
				fmt.Fprintln(a.out, "No files found.")
				return nil
			}

			fmt.Fprintln(a.out, renderTable(records))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "q", "", "only keys containing this text (case-insensitive)")
	cmd.Flags().BoolVar(&sorted, "sort", false, "sort by key")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")
	return cmd
}

// load refreshes the listing and returns it filtered and optionally sorted.
func (a *App) load(cmd *cobra.Command, search string, sorted bool) ([]models.ObjectRecord, error) {
	if err := a.orch.Refresh(cmd.Context()); err != nil {
		return nil, err
	}
	records := filetree.Filter(a.orch.Listing().Snapshot(), search)
	if sorted {
		records = filetree.SortByKey(records)
	}
	return records, nil
}

func renderTable(records []models.ObjectRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Key, formatFileSize(r.Size), formatDate(r.LastModified)})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("KEY", "SIZE", "LAST MODIFIED").
		Rows(rows...).
		String() + "\n" + strconv.Itoa(len(records)) + " file(s)"
}
