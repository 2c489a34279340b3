// Package hooksig signs and verifies send-hook notifications exchanged
// between the token and vault services.
//
// Why this package exists:
// - The vault must not honor a receive hook from an arbitrary caller.
// - It isolates cryptographic details from transport and service code.
// - Key ids allow rotation without breaking in-flight notifications.
package hooksig

import (
	"crypto/hkdf"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Keyring stores root HMAC keys and the active key id.
type Keyring struct {
	keys        map[string][]byte
	activeKeyID string
}

// NewKeyring constructs a keyring for hook signing and verification.
func NewKeyring(keys map[string][]byte, activeKeyID string) (*Keyring, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("hmac keys are required")
	}
	activeKeyID = strings.TrimSpace(activeKeyID)
	if activeKeyID == "" {
		return nil, fmt.Errorf("active hmac key id is required")
	}
	if _, ok := keys[activeKeyID]; !ok {
		return nil, fmt.Errorf("active hmac key id is not configured")
	}
	return &Keyring{keys: keys, activeKeyID: activeKeyID}, nil
}

// ActiveKeyID returns the configured signing key id.
func (k *Keyring) ActiveKeyID() string {
	if k == nil {
		return ""
	}
	return k.activeKeyID
}

// Payload builds the canonical hook payload for a sender and amount.
func Payload(sender, amount string) string {
	return sender + "\n" + amount
}

// Sign signs a hook payload with the active key, scoped to the token
// contract address. It returns the hex signature and the key id used.
func (k *Keyring) Sign(contract, payload string) (string, string, error) {
	if k == nil {
		return "", "", fmt.Errorf("hook keyring is not configured")
	}
	keyID := k.activeKeyID
	key, err := k.deriveKey(keyID, contract)
	if err != nil {
		return "", "", err
	}
	return hmacSHA256Hex(key, payload), keyID, nil
}

// Verify validates a hook payload signature.
func (k *Keyring) Verify(contract, payload, signature, keyID string) error {
	if k == nil {
		return fmt.Errorf("hook keyring is not configured")
	}
	keyID = strings.TrimSpace(keyID)
	if keyID == "" {
		return fmt.Errorf("signature key id is required")
	}
	rootKey, ok := k.keys[keyID]
	if !ok {
		return fmt.Errorf("signature key id is unknown")
	}
	key, err := deriveContractKey(rootKey, contract)
	if err != nil {
		return err
	}
	expected := hmacSHA256Hex(key, payload)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}

func (k *Keyring) deriveKey(keyID, contract string) ([]byte, error) {
	rootKey, ok := k.keys[keyID]
	if !ok {
		return nil, fmt.Errorf("hmac key id is unknown")
	}
	return deriveContractKey(rootKey, contract)
}

func deriveContractKey(rootKey []byte, contract string) ([]byte, error) {
	contract = strings.TrimSpace(contract)
	if contract == "" {
		return nil, fmt.Errorf("token contract is required")
	}
	key, err := hkdf.Key(sha256.New, rootKey, nil, "contract:"+contract, 32)
	if err != nil {
		return nil, fmt.Errorf("derive contract key: %w", err)
	}
	return key, nil
}

func hmacSHA256Hex(key []byte, value string) string {
	mac := hmac.New(sha256.New, key)
	_, _ = mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil))
}
