package grant

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"

	"github.com/incalabs/coinwrap/internal/platform/id"
)

// issueEnv holds raw env values before post-parse validation.
type issueEnv struct {
	Issuer     string        `env:"COINWRAP_OWNER_GRANT_ISSUER"`
	Audience   string        `env:"COINWRAP_OWNER_GRANT_AUDIENCE"`
	PrivateKey string        `env:"COINWRAP_OWNER_GRANT_PRIVATE_KEY"`
	TTL        time.Duration `env:"COINWRAP_OWNER_GRANT_TTL"         envDefault:"5m"`
}

// IssueConfig defines how owner grants are signed.
type IssueConfig struct {
	Issuer   string
	Audience string
	Key      ed25519.PrivateKey
	TTL      time.Duration
}

// LoadIssueConfigFromEnv reads owner grant signing configuration.
func LoadIssueConfigFromEnv() (IssueConfig, error) {
	var raw issueEnv
	if err := env.Parse(&raw); err != nil {
		return IssueConfig{}, fmt.Errorf("parse owner grant env: %w", err)
	}
	issuer := strings.TrimSpace(raw.Issuer)
	audience := strings.TrimSpace(raw.Audience)
	privateKey := strings.TrimSpace(raw.PrivateKey)
	if issuer == "" {
		return IssueConfig{}, fmt.Errorf("COINWRAP_OWNER_GRANT_ISSUER is required")
	}
	if audience == "" {
		return IssueConfig{}, fmt.Errorf("COINWRAP_OWNER_GRANT_AUDIENCE is required")
	}
	if privateKey == "" {
		return IssueConfig{}, fmt.Errorf("COINWRAP_OWNER_GRANT_PRIVATE_KEY is required")
	}
	keyBytes, err := decodeBase64(privateKey)
	if err != nil {
		return IssueConfig{}, fmt.Errorf("decode owner grant private key: %w", err)
	}
	if len(keyBytes) != ed25519.PrivateKeySize {
		return IssueConfig{}, fmt.Errorf("owner grant private key must be %d bytes", ed25519.PrivateKeySize)
	}
	if raw.TTL <= 0 {
		return IssueConfig{}, fmt.Errorf("owner grant ttl must be positive")
	}
	return IssueConfig{
		Issuer:   issuer,
		Audience: audience,
		Key:      ed25519.PrivateKey(keyBytes),
		TTL:      raw.TTL,
	}, nil
}

// Issue signs a fresh owner grant for the given owner account.
func Issue(cfg IssueConfig, owner string, now time.Time) (string, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return "", errors.New("owner is required")
	}
	if cfg.Issuer == "" || cfg.Audience == "" || len(cfg.Key) != ed25519.PrivateKeySize {
		return "", errors.New("owner grant signer is not configured")
	}
	if cfg.TTL <= 0 {
		return "", errors.New("owner grant ttl must be positive")
	}
	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC()

	jti, err := id.NewID()
	if err != nil {
		return "", fmt.Errorf("generate grant id: %w", err)
	}
	claims := ownerGrantClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
			ID:        jti,
		},
		Owner: owner,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	signed, err := token.SignedString(cfg.Key)
	if err != nil {
		return "", fmt.Errorf("sign owner grant: %w", err)
	}
	return signed, nil
}
