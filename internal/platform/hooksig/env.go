package hooksig

import (
	"fmt"
	"os"
	"strings"
)

const (
	envHMACKeys  = "COINWRAP_HOOK_HMAC_KEYS"
	envHMACKey   = "COINWRAP_HOOK_HMAC_KEY"
	envHMACKeyID = "COINWRAP_HOOK_HMAC_KEY_ID"
	defaultKeyID = "v1"
)

// KeyringFromEnv loads the hook HMAC keyring configuration from environment
// variables. COINWRAP_HOOK_HMAC_KEYS holds "id=key" pairs separated by commas;
// COINWRAP_HOOK_HMAC_KEY configures a single key under the active id.
func KeyringFromEnv() (*Keyring, error) {
	keyID := strings.TrimSpace(os.Getenv(envHMACKeyID))
	if keyID == "" {
		keyID = defaultKeyID
	}

	keySpec := strings.TrimSpace(os.Getenv(envHMACKeys))
	if keySpec == "" {
		raw := strings.TrimSpace(os.Getenv(envHMACKey))
		if raw == "" {
			return nil, fmt.Errorf("%s is required", envHMACKey)
		}
		return NewKeyring(map[string][]byte{keyID: []byte(raw)}, keyID)
	}

	keys := make(map[string][]byte)
	entries := strings.Split(keySpec, ",")
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid %s entry", envHMACKeys)
		}
		id := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if id == "" || value == "" {
			return nil, fmt.Errorf("invalid %s entry", envHMACKeys)
		}
		keys[id] = []byte(value)
	}
	return NewKeyring(keys, keyID)
}
