package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tfdsearch/internal/render"
)

var (
	historyKind  string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent search terms",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch historyKind {
		case "", "weapons", "modules":
		default:
			return fmt.Errorf("invalid --kind %q (weapons or modules)", historyKind)
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		records, err := a.store.History(historyKind, historyLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No searches recorded yet.")
			return nil
		}

		t := render.NewTable("Search History", "When", "Kind", "Term", "Matches")
		for _, r := range records {
			t.AddRow(
				r.SearchedAt.Local().Format("2006-01-02 15:04:05"),
				r.Kind,
				r.Term,
				strconv.Itoa(r.Matches),
			)
		}
		fmt.Print(t.Render(render.DefaultStyles()))
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyKind, "kind", "", "filter by kind (weapons or modules)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum records to show")
}
