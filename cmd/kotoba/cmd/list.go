package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tomozane/kotoba/internal/tui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all vocabulary entries",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.All()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No vocabulary yet. Add entries with 'kotoba add'.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWORD\tTRANSLATIONS\tSENTENCES")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n",
			e.ID, tui.DisplayText(e.Word), strings.Join(e.Translations, ", "), len(e.Sentences))
	}
	return w.Flush()
}

// parseID parses a numeric entry id argument.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid entry id %q", s)
	}
	return id, nil
}
