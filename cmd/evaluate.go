package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/lexiz/internal/store"
	"github.com/spf13/cobra"
)

// errorPayload is printed when the result itself cannot be encoded.
const errorPayload = `{"error": "failed to encode evaluation result"}`

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <word> <sentence>",
	Short: "Evaluate one sentence and print the result as JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		word, sentence := args[0], args[1]
		external, _ := cmd.Flags().GetBool("external")

		eng, err := buildEngine()
		if err != nil {
			return err
		}

		result := eng.Evaluate(cmd.Context(), word, sentence, external)

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Println(errorPayload)
			return nil
		}
		fmt.Println(string(out))

		// Record in history. A broken store should not eat the output.
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, "History not recorded:", err)
			return nil
		}
		st, err := store.Open(dbPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "History not recorded:", err)
			return nil
		}
		defer st.Close()

		err = st.Evaluations().Append(cmd.Context(), store.Evaluation{
			Word:              word,
			Sentence:          sentence,
			Status:            result.SentenceFeedback.Status,
			Explanation:       result.SentenceFeedback.Explanation,
			CorrectedSentence: result.SentenceFeedback.CorrectedSentence,
			CreatedAt:         time.Now().UTC(),
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "History not recorded:", err)
		}
		return nil
	},
}

func init() {
	evaluateCmd.Flags().Bool("external", false, "Also consult your own dictionary file for unknown words")
}
