package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/dmitrijs2005/bucketdrop/internal/filetree"
	"github.com/spf13/cobra"
)

var folderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)

func newTreeCmd(app func() *App) *cobra.Command {
	var (
		search string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show the bucket as a folder tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			records, err := a.load(cmd, search, false)
			if err != nil {
				return err
			}

			nodes, conflicts := filetree.BuildWithConflicts(records)
			for _, c := range conflicts {
				a.logger.Warn(cmd.Context(), "key not shown in tree", "key", c.Key, "segment", c.Segment)
			}

			if asJSON {
				if nodes == nil {
					nodes = []filetree.Node{}
				}
				enc := json.NewEncoder(a.out)
				enc.SetIndent("", "  ")
				return enc.Encode(nodes)
			}

			if len(nodes) == 0 {
				fmt.Fprintln(a.out, "No files found.")
				return nil
			}

			fmt.Fprintln(a.out, renderTree(a.config.ServerURL, nodes))
			folders, files := filetree.Count(nodes)
			fmt.Fprintf(a.out, "%d folder(s), %d file(s)\n", folders, files)
			for _, c := range conflicts {
				fmt.Fprintf(a.out, "skipped %s: %q is both a file and a folder\n", c.Key, c.Segment)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "q", "", "only keys containing this text (case-insensitive)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the tree as JSON")
	return cmd
}

func renderTree(root string, nodes []filetree.Node) string {
	t := tree.Root(root)
	addNodes(t, nodes)
	return t.String()
}

func addNodes(t *tree.Tree, nodes []filetree.Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *filetree.Folder:
			sub := tree.Root(folderStyle.Render(n.Name + "/"))
			addNodes(sub, n.Children)
			t.Child(sub)
		case *filetree.File:
			t.Child(fmt.Sprintf("%s (%s)", n.Name, formatFileSize(n.Object.Size)))
		}
	}
}
