package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/kociemba"
	"github.com/ehrlich-b/cube/internal/notation"
	"github.com/ehrlich-b/cube/internal/storage"
)

var (
	solveMaxLength int
	solveTimeout   float64
	solveNoRecord  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `solve applies the given scramble notation to a solved cube and
prints a solution found with Kociemba's two-phase algorithm.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&solveMaxLength, "max-length", 0, "maximum solution length (default: 20)")
	solveCmd.Flags().Float64Var(&solveTimeout, "timeout", 0, "search timeout in seconds (default: 3)")
	solveCmd.Flags().BoolVar(&solveNoRecord, "no-record", false, "skip recording the solve to history")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	scramble := args[0]

	moves, err := notation.ParseSequence(scramble)
	if err != nil {
		return fmt.Errorf("invalid scramble: %w", err)
	}

	c := cube.New()
	c.ApplyMoves(moves)

	start := time.Now()
	solution, err := c.Solve(kociemba.SolveOptions{
		MaxLength:      solveMaxLength,
		TimeoutSeconds: solveTimeout,
	})
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	solutionStr := notation.FormatSequence(solution)
	fmt.Printf("Solution (%d moves, %s): %s\n", len(solution), formatDuration(elapsed), solutionStr)

	if solveNoRecord {
		return nil
	}

	db, err := openDB()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: solve not recorded: %v\n", err)
		return nil
	}
	defer db.Close()

	rec := storage.SolveRecord{
		SolveID:    uuid.NewString(),
		SolvedAt:   time.Now().UTC().Format(time.RFC3339),
		Algorithm:  "kociemba",
		Scramble:   scramble,
		Facelet:    c.ToFacelet(),
		Solution:   solutionStr,
		MoveCount:  len(solution),
		DurationMS: elapsed.Milliseconds(),
	}
	if err := storage.NewSolveRepository(db).Create(rec); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to record solve: %v\n", err)
	}

	return nil
}

func getDBPath() string {
	return dbPath
}

func openDB() (*storage.DB, error) {
	path := getDBPath()
	if path == "" {
		return storage.OpenDefault()
	}
	return storage.Open(path)
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}
