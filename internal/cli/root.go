// Package cli defines the cobra command tree for rentwise.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rentwise",
		Short:         "Property management API",
		Long:          "Rentwise serves the property management API: properties, tenants, payment history and rent payments for admins and tenants.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}
