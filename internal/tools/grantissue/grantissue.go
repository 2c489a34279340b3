// Package grantissue signs vault owner grants for operators.
package grantissue

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/incalabs/coinwrap/internal/services/vault/grant"
)

// Config holds configuration for owner grant issuance.
type Config struct {
	Owner string
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.Owner, "owner", "", "vault owner the grant is issued for")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run signs an owner grant and writes it to out. Signing configuration
// comes from the COINWRAP_OWNER_GRANT_* environment variables.
func Run(cfg Config, out io.Writer, now func() time.Time) error {
	if out == nil {
		return errors.New("output is required")
	}
	owner := strings.TrimSpace(cfg.Owner)
	if owner == "" {
		return errors.New("owner is required")
	}
	if now == nil {
		now = time.Now
	}

	issueCfg, err := grant.LoadIssueConfigFromEnv()
	if err != nil {
		return err
	}
	signed, err := grant.Issue(issueCfg, owner, now())
	if err != nil {
		return fmt.Errorf("issue owner grant: %w", err)
	}
	_, err = fmt.Fprintln(out, signed)
	return err
}
