package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Credentials stores the external-source API key in the settings table. It
// gates the external dictionary lookup upstream of the evaluation engine —
// the engine itself never sees a credential.
//
// The interface is deliberately forgiving: Get reports presence, Set reports
// success, Clear is best-effort. Failures are warned to stderr and degrade
// to "no credential", which simply disables the external source.
type Credentials struct {
	settings *SettingsRepo
}

// Get returns the stored API key and whether one is set.
func (c *Credentials) Get() (string, bool) {
	value, err := c.settings.Get(context.Background(), SettingAPIKey)
	if errors.Is(err, ErrNotFound) {
		return "", false
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: read credential:", err)
		return "", false
	}
	return value, value != ""
}

// Set stores the API key. Returns false when the key is blank or storage
// fails.
func (c *Credentials) Set(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	if err := c.settings.Set(context.Background(), SettingAPIKey, key); err != nil {
		fmt.Fprintln(os.Stderr, "warning: store credential:", err)
		return false
	}
	return true
}

// Clear removes the stored API key.
func (c *Credentials) Clear() {
	if err := c.settings.Delete(context.Background(), SettingAPIKey); err != nil {
		fmt.Fprintln(os.Stderr, "warning: clear credential:", err)
	}
}
