package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/lexiz/internal/store"
	"github.com/spf13/cobra"
)

var apikeyCmd = &cobra.Command{
	Use:   "apikey",
	Short: "Manage the stored dictionary-service API key",
}

var apikeySetCmd = &cobra.Command{
	Use:   "set <key>",
	Short: "Store an API key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCredentials(cmd, func(creds *store.Credentials) error {
			if !creds.Set(args[0]) {
				return fmt.Errorf("API key cannot be blank")
			}
			fmt.Println("API key saved.")
			return nil
		})
	},
}

var apikeyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show whether an API key is stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCredentials(cmd, func(creds *store.Credentials) error {
			key, ok := creds.Get()
			if !ok {
				fmt.Println("No API key stored.")
				return nil
			}
			fmt.Printf("API key stored (%s).\n", maskKey(key))
			return nil
		})
	},
}

var apikeyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCredentials(cmd, func(creds *store.Credentials) error {
			creds.Clear()
			fmt.Println("API key cleared.")
			return nil
		})
	},
}

func withCredentials(cmd *cobra.Command, fn func(*store.Credentials) error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	return fn(st.Credentials())
}

// maskKey keeps the last four characters visible.
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

func init() {
	apikeyCmd.AddCommand(apikeySetCmd)
	apikeyCmd.AddCommand(apikeyShowCmd)
	apikeyCmd.AddCommand(apikeyClearCmd)
}
