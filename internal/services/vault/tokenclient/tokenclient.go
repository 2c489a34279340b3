// Package tokenclient adapts the token.v1 gRPC API for vault use.
package tokenclient

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	tokenv1 "github.com/incalabs/coinwrap/api/gen/go/token/v1"
	"github.com/incalabs/coinwrap/internal/platform/coins"
)

// Client drives the token service as the vault account. The vault account
// is the token's minter, the spender for withdrawals, and the owner of
// tokens burned on release.
type Client struct {
	token        tokenv1.TokenServiceClient
	vaultAccount string
}

// New creates a token client acting as vaultAccount.
func New(token tokenv1.TokenServiceClient, vaultAccount string) (*Client, error) {
	if token == nil {
		return nil, fmt.Errorf("token client is required")
	}
	vaultAccount = strings.TrimSpace(vaultAccount)
	if vaultAccount == "" {
		return nil, fmt.Errorf("vault account is required")
	}
	return &Client{token: token, vaultAccount: vaultAccount}, nil
}

// Mint credits newly wrapped tokens to the recipient.
func (c *Client) Mint(ctx context.Context, recipient, amount string) error {
	_, err := c.token.Mint(ctx, &tokenv1.MintRequest{
		Minter:    c.vaultAccount,
		Recipient: recipient,
		Amount:    amount,
	})
	return err
}

// Burn destroys tokens held by the vault account.
func (c *Client) Burn(ctx context.Context, amount string) error {
	_, err := c.token.Burn(ctx, &tokenv1.BurnRequest{
		Owner:  c.vaultAccount,
		Amount: amount,
	})
	return err
}

// Transfer moves tokens from the vault account to a recipient.
func (c *Client) Transfer(ctx context.Context, recipient, amount string) error {
	_, err := c.token.Transfer(ctx, &tokenv1.TransferRequest{
		Owner:     c.vaultAccount,
		Recipient: recipient,
		Amount:    amount,
	})
	return err
}

// TransferFrom pulls tokens from the owner into the vault account,
// consuming the owner's allowance for the vault.
func (c *Client) TransferFrom(ctx context.Context, owner, amount string) error {
	_, err := c.token.TransferFrom(ctx, &tokenv1.TransferFromRequest{
		Spender:   c.vaultAccount,
		Owner:     owner,
		Recipient: c.vaultAccount,
		Amount:    amount,
	})
	return err
}

// Allowance returns what the vault may transfer from the owner.
func (c *Client) Allowance(ctx context.Context, owner string) (*big.Int, error) {
	resp, err := c.token.Allowance(ctx, &tokenv1.AllowanceRequest{
		Owner:   owner,
		Spender: c.vaultAccount,
	})
	if err != nil {
		return nil, err
	}
	return coins.Parse(resp.Allowance)
}
