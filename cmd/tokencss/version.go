package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by the release build:
//
//	go build -ldflags "-X main.version=v0.3.0" ./cmd/tokencss
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the tokencss version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("tokencss %s\n", version)
	},
}
