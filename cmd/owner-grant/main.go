// Package main signs a vault owner grant for the given owner.
package main

import (
	"flag"
	"os"

	"github.com/incalabs/coinwrap/internal/platform/config"
	"github.com/incalabs/coinwrap/internal/tools/grantissue"
)

func main() {
	cfg, err := grantissue.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := grantissue.Run(cfg, os.Stdout, nil); err != nil {
		config.Exitf("issue owner grant: %v", err)
	}
}
