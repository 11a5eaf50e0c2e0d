package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/samdwyer/gravedelve/internal/save"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List save slots",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := save.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening save database: %w", err)
		}
		defer store.Close()

		slots, err := store.Slots()
		if err != nil {
			return fmt.Errorf("listing slots: %w", err)
		}
		if len(slots) == 0 {
			fmt.Println("No saved games.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SLOT\tNAME\tDEPTH\tTURN\tSAVED")
		for _, s := range slots {
			depth := "Town"
			if s.Depth > 0 {
				depth = fmt.Sprintf("Depth %d", s.Depth)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
				s.Slot, s.PlayerName, depth, s.Turn, s.SavedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}
