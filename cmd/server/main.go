// Package main implements the junction-api command: the HTTP server for the
// heroes and vendors APIs plus its schema migration and seed tooling.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
