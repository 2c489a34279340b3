// Package main provides a one-shot utility for owner-grant key generation.
//
// It emits the asymmetric keypair used to sign and verify vault owner grants.
package main

import (
	"os"

	"github.com/incalabs/coinwrap/internal/platform/config"
	"github.com/incalabs/coinwrap/internal/tools/ownergrant"
)

func main() {
	if err := ownergrant.Run(os.Stdout, nil); err != nil {
		config.Exitf("generate owner grant key: %v", err)
	}
}
