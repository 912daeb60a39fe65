package dictionary

import (
	"os"
	"path/filepath"
)

// DefaultUserPath returns the path of the learner's own dictionary file,
// honoring LEXIZ_DICTIONARY, then XDG_DATA_HOME, then ~/.local/share.
// The file does not have to exist; FileSource reports misses per lookup.
func DefaultUserPath() (string, error) {
	if p := os.Getenv("LEXIZ_DICTIONARY"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "lexiz", "dictionary.json"), nil
}
