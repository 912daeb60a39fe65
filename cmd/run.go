package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/lexiz/internal/app"
	"github.com/abhisek/lexiz/internal/dictionary"
	"github.com/abhisek/lexiz/internal/engine"
	"github.com/abhisek/lexiz/internal/store"
	"github.com/abhisek/lexiz/internal/tagger"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the evaluation engine, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eng, err := buildEngine()
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Engine:      eng,
		Evaluations: st.Evaluations(),
		Settings:    st.Settings(),
		Credentials: st.Credentials(),
	})
}

// buildEngine assembles the evaluation engine: the built-in dictionary,
// the learner's own dictionary file as the extended source, and the
// rule-based part-of-speech tagger.
func buildEngine() (*engine.Engine, error) {
	table, err := dictionary.Load()
	if err != nil {
		return nil, fmt.Errorf("load built-in dictionary: %w", err)
	}

	opts := engine.Options{
		Local:  table,
		Tagger: tagger.New(),
	}

	userPath, err := dictionary.DefaultUserPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, "User dictionary unavailable:", err)
		fmt.Fprintln(os.Stderr, "Extended lookups will miss.")
	} else {
		opts.Source = dictionary.WithTimeout(
			dictionary.NewFileSource(userPath), dictionary.DefaultFetchTimeout)
	}

	return engine.New(opts), nil
}
