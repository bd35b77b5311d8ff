// Package main is the entry point for the rentwise API server.
//
// @title                       Rentwise API
// @version                     1.0
// @description                 Property management: listings, tenants, payment history and rent payments.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"fmt"
	"os"

	"github.com/propelrent/rentwise/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
