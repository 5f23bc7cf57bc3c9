package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cube/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently recorded solves",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of solves to list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	records, err := storage.NewSolveRepository(db).Recent(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list solve history: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No solves recorded yet.")
		return nil
	}

	for _, rec := range records {
		fmt.Printf("%s  %-8s  %3d moves  %6dms  %s\n", rec.SolvedAt, rec.SolveID, rec.MoveCount, rec.DurationMS, rec.Solution)
	}
	return nil
}
