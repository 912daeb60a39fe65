package cmd

import (
	"fmt"

	"github.com/abhisek/lexiz/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show evaluation statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		counts, err := st.Evaluations().Counts(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		total := counts.Total()
		if total == 0 {
			fmt.Println("No evaluations yet.")
			return nil
		}

		fmt.Printf("Sentences evaluated: %d\n", total)
		fmt.Printf("  Correct:         %d\n", counts.Correct)
		fmt.Printf("  Mostly correct:  %d\n", counts.MostlyCorrect)
		fmt.Printf("  Incorrect:       %d\n", counts.Incorrect)
		return nil
	},
}
