// Package hookclient delivers signed receive notifications to the vault.
package hookclient

import (
	"context"
	"fmt"
	"strings"

	vaultv1 "github.com/incalabs/coinwrap/api/gen/go/vault/v1"
	"github.com/incalabs/coinwrap/internal/platform/hooksig"
)

// Client signs receive payloads with the shared keyring and forwards them
// to the vault service. The vault verifies the signature against the same
// keyring before releasing escrow.
type Client struct {
	vault         vaultv1.VaultServiceClient
	keyring       *hooksig.Keyring
	tokenContract string
}

// New creates a hook client acting as tokenContract.
func New(vault vaultv1.VaultServiceClient, keyring *hooksig.Keyring, tokenContract string) (*Client, error) {
	if vault == nil {
		return nil, fmt.Errorf("vault client is required")
	}
	if keyring == nil {
		return nil, fmt.Errorf("keyring is required")
	}
	tokenContract = strings.TrimSpace(tokenContract)
	if tokenContract == "" {
		return nil, fmt.Errorf("token contract address is required")
	}
	return &Client{
		vault:         vault,
		keyring:       keyring,
		tokenContract: tokenContract,
	}, nil
}

// NotifyReceive signs and delivers one receive notification.
func (c *Client) NotifyReceive(ctx context.Context, sender, amount string) error {
	if c == nil || c.vault == nil {
		return fmt.Errorf("hook client is not configured")
	}
	payload := hooksig.Payload(sender, amount)
	signature, keyID, err := c.keyring.Sign(c.tokenContract, payload)
	if err != nil {
		return fmt.Errorf("sign receive payload: %w", err)
	}
	_, err = c.vault.Receive(ctx, &vaultv1.ReceiveRequest{
		TokenContract: c.tokenContract,
		Sender:        sender,
		Amount:        amount,
		Signature:     signature,
		KeyId:         keyID,
	})
	return err
}
